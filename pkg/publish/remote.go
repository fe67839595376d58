package publish

import (
	"context"

	"github.com/xrsl/applykit/pkg/errs"
)

// RemoteAPIPublisher is the managed-environment variant. Hosted
// deployments have no gh CLI or git credentials, so publishing there
// needs a token-based GitHub API client. That client is not
// implemented; every invocation fails without touching the filesystem.
type RemoteAPIPublisher struct{}

// NewRemoteAPI returns the stub remote publisher.
func NewRemoteAPI() *RemoteAPIPublisher {
	return &RemoteAPIPublisher{}
}

// Publish always fails with a ConfigurationError.
func (p *RemoteAPIPublisher) Publish(ctx context.Context, req Request) (*Result, error) {
	return nil, &errs.ConfigurationError{
		Msg: "remote publishing requires token-based GitHub API access (GITHUB_TOKEN), which is not configured; set publish_mode to local to use the gh CLI",
	}
}
