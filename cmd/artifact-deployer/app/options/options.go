package options

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/cmd/artifact-deployer/app/config"
	"github.com/neutree-ai/artifact-deployer/internal/deploy"
	"github.com/neutree-ai/artifact-deployer/pkg/client"
)

const TokenEnv = "ARTIFACT_DEPLOYER_TOKEN"

type Options struct {
	Files        []string
	Timeout      time.Duration
	Parallelism  int
	Token        string
	Insecure     bool
	PollInterval time.Duration
}

func NewOptions() *Options {
	return &Options{
		Parallelism: 1,
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&o.Files, "filename", "f", o.Files, "deployment descriptor, YAML or JSON (repeatable)")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "deployment timeout, overrides the descriptors and the target defaults")
	fs.IntVar(&o.Parallelism, "parallelism", o.Parallelism, "number of deployments processed at the same time")
	fs.StringVar(&o.Token, "token", o.Token, "bearer token for targets without one (env: "+TokenEnv+")")
	fs.BoolVar(&o.Insecure, "insecure", o.Insecure, "skip TLS verification of target APIs")
	fs.DurationVar(&o.PollInterval, "poll-interval", o.PollInterval, "override the poll interval of every target")

	_ = fs.MarkHidden("poll-interval")
}

func (o *Options) Validate() error {
	if len(o.Files) == 0 {
		return errors.New("at least one descriptor is required (-f)")
	}

	if o.Timeout < 0 {
		return errors.Errorf("timeout must not be negative, got %s", o.Timeout)
	}

	if o.Parallelism < 1 {
		return errors.Errorf("parallelism must be at least 1, got %d", o.Parallelism)
	}

	if o.PollInterval < 0 {
		return errors.Errorf("poll interval must not be negative, got %s", o.PollInterval)
	}

	return nil
}

// Config loads the descriptors and applies the command line overrides.
func (o *Options) Config() (*config.Config, error) {
	token := o.Token
	if token == "" {
		token = os.Getenv(TokenEnv)
	}

	c := &config.Config{Parallelism: o.Parallelism}

	for _, file := range o.Files {
		deployments, err := config.LoadDeployments(file)
		if err != nil {
			return nil, err
		}

		if len(deployments) == 0 {
			klog.InfoS("Descriptor holds no deployment", "file", file)
		}

		for _, d := range deployments {
			o.override(d, token)
			c.Deployments = append(c.Deployments, d)
		}
	}

	factoryOpts := []deploy.FactoryOption{deploy.WithLogger(klog.Background())}
	if o.Insecure {
		factoryOpts = append(factoryOpts, deploy.WithClientOptions(client.WithInsecureSkipVerify()))
	}

	if o.PollInterval > 0 {
		factoryOpts = append(factoryOpts, deploy.WithPollInterval(o.PollInterval))
	}

	c.Factory = deploy.NewFactory(factoryOpts...)

	return c, nil
}

func (o *Options) override(d *v1.Deployment, token string) {
	if o.Timeout > 0 {
		millis := o.Timeout.Milliseconds()
		d.Timeout = &millis
	}

	if token == "" {
		return
	}

	t := &d.Target
	switch {
	case t.Agent != nil && t.Agent.Token == "":
		t.Agent.Token = token
	case t.CloudHub != nil && t.CloudHub.Token == "":
		t.CloudHub.Token = token
	case t.ARM != nil && t.ARM.Token == "":
		t.ARM.Token = token
	case t.RuntimeFabric != nil && t.RuntimeFabric.Token == "":
		t.RuntimeFabric.Token = token
	}
}
