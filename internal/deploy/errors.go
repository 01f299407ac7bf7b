package deploy

import (
	"github.com/pkg/errors"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
)

var (
	// ErrUnsupportedTarget is returned when the target type is not supported
	ErrUnsupportedTarget = errors.Wrap(v1.ErrInvalidConfiguration, "unsupported target type")

	// ErrUnsupportedPackaging is returned when the target cannot host the packaging kind
	ErrUnsupportedPackaging = errors.Wrap(v1.ErrInvalidConfiguration, "unsupported packaging")
)
