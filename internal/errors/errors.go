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

// Package errors defines sentinel errors for consistent error handling across the application.
// Every error surfaced by the collect command maps to exit code 1; the sentinels let
// callers and tests tell the failure classes apart.
package errors

import "errors"

// Sentinel errors for input validation and fetch failures
var (
	// ErrInvalidDate indicates --merged-since is not a real YYYY-MM-DD calendar date.
	// The message is shown to the user verbatim.
	ErrInvalidDate = errors.New("Invalid date format for --merged-since. Please use YYYY-MM-DD.") //nolint:staticcheck // user-facing message

	// ErrMissingParameter indicates a required value (token, owner, repo) was
	// given neither as an option nor through the environment.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrHTTPStatus indicates the GraphQL endpoint answered with a non-200 status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrAPI indicates the GraphQL response carried an errors payload.
	ErrAPI = errors.New("github api error")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")
)

// FetchError reports a failed page request. Its message is the user-facing
// "Error fetching data: <reason>" line; Kind is one of ErrHTTPStatus, ErrAPI
// or ErrNetworkFailure.
type FetchError struct {
	Kind   error
	Reason string
	Err    error
}

// NewFetchError builds a FetchError of the given kind.
func NewFetchError(kind error, reason string, cause error) *FetchError {
	return &FetchError{Kind: kind, Reason: reason, Err: cause}
}

func (e *FetchError) Error() string {
	return "Error fetching data: " + e.Reason
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is/As.
func (e *FetchError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
