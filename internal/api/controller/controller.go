package controller

import (
	"context"
	"io"

	"github.com/ougirez/coalportal/internal/service/portal"
)

// ArtifactOpener serves stored report files.
type ArtifactOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type Controller struct {
	portal    *portal.Service
	artifacts ArtifactOpener
}

func NewController(portal *portal.Service, artifacts ArtifactOpener) *Controller {
	return &Controller{portal: portal, artifacts: artifacts}
}
