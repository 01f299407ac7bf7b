package config

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
)

const decodeBufferSize = 4096

// LoadDeployments reads every deployment of a YAML or JSON descriptor.
// YAML descriptors may hold several documents.
func LoadDeployments(path string) ([]*v1.Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor %s", path)
	}

	deployments, err := DecodeDeployments(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode descriptor %s", path)
	}

	return deployments, nil
}

func DecodeDeployments(data []byte) ([]*v1.Deployment, error) {
	var deployments []*v1.Deployment

	reader := utilyaml.NewYAMLReader(bufio.NewReaderSize(bytes.NewReader(data), decodeBufferSize))

	for {
		doc, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		// documents holding only comments
		if j, err := yaml.YAMLToJSON(doc); err == nil && string(j) == "null" {
			continue
		}

		d := &v1.Deployment{}
		if err := yaml.UnmarshalStrict(doc, d); err != nil {
			return nil, err
		}

		deployments = append(deployments, d)
	}

	return deployments, nil
}
