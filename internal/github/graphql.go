// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"errors"
	"net/url"

	"github.com/shurcooL/graphql"
	log "github.com/sirupsen/logrus"

	apperrors "github.com/sirseerhq/sirseer-testers/internal/errors"
	"github.com/sirseerhq/sirseer-testers/internal/giterror"
)

var logger = log.WithField("package", "github")

// GraphQLClient implements the GitHub Client interface using GraphQL API.
// Requests are never retried: the first failure is returned to the caller.
type GraphQLClient struct {
	client    *graphql.Client
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// The client is configured with:
//   - Bearer token authentication through an oauth2 static token source
//   - Custom GraphQL endpoint URL (e.g., for GitHub Enterprise)
//   - Non-200 responses turned into status errors by the transport
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
func NewGraphQLClient(token string, endpoint string) *GraphQLClient {
	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, newHTTPClient(token)),
		inspector: giterror.NewInspector(),
	}
}

// mapError maps transport and GraphQL errors to fetch errors with the
// user-facing reason. The token is never part of the message.
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	if statusErr, ok := c.inspector.StatusError(err); ok {
		if c.inspector.IsAuthError(err) {
			logger.WithField("status", statusErr.StatusCode).
				Warn("GitHub rejected the credentials; check --token or GITHUB_TOKEN")
		}
		return apperrors.NewFetchError(apperrors.ErrHTTPStatus, statusErr.Reason(), statusErr)
	}

	if c.inspector.IsNetworkError(err) {
		reason := err.Error()
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			reason = urlErr.Err.Error()
		}
		return apperrors.NewFetchError(apperrors.ErrNetworkFailure, reason, err)
	}

	// shurcooL/graphql reports an errors payload with the first message as its text.
	return apperrors.NewFetchError(apperrors.ErrAPI, err.Error(), err)
}
