package config

import (
	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/deploy"
)

type Config struct {
	Deployments []*v1.Deployment
	Parallelism int
	Factory     *deploy.Factory
}
