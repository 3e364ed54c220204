// Package mocks provides hand-rolled mock implementations with call tracking
// for the platform abstraction.
package mocks

import (
	"sync"

	"github.com/caretaking/auto-merge/pkg/config"
	"github.com/caretaking/auto-merge/pkg/platform"
)

// MethodCall records a single mock invocation.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// PlatformProvider is a mock implementation of platform.Provider with call tracking.
type PlatformProvider struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	InitializeError        error
	GetPullRequestResponse *platform.PullRequest
	GetPullRequestError    error
	MergeError             error
	PlatformNameValue      string
}

// NewPlatformProvider creates a new mock platform provider.
func NewPlatformProvider() *PlatformProvider {
	return &PlatformProvider{
		calls:             make([]MethodCall, 0),
		PlatformNameValue: "MockPlatform",
	}
}

// Initialize implements platform.Provider.
func (m *PlatformProvider) Initialize(repo *config.Repository) error {
	m.trackCall("Initialize", map[string]any{
		"repo": repo,
	})
	return m.InitializeError
}

// GetPullRequest implements platform.Provider.
func (m *PlatformProvider) GetPullRequest(number int) (*platform.PullRequest, error) {
	m.trackCall("GetPullRequest", map[string]any{
		"number": number,
	})
	return m.GetPullRequestResponse, m.GetPullRequestError
}

// Merge implements platform.Provider.
func (m *PlatformProvider) Merge(params platform.MergeParams) error {
	m.trackCall("Merge", map[string]any{
		"params": params,
	})
	return m.MergeError
}

// PlatformName implements platform.Provider.
func (m *PlatformProvider) PlatformName() string {
	m.trackCall("PlatformName", map[string]any{})
	return m.PlatformNameValue
}

// GetCallCount returns how many times the named method was invoked.
func (m *PlatformProvider) GetCallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// GetCalls returns a copy of all recorded calls in invocation order.
func (m *PlatformProvider) GetCalls() []MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]MethodCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

func (m *PlatformProvider) trackCall(method string, args map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{Method: method, Args: args})
}
