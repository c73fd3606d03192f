package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubTool(name string, result map[string]any) Tool {
	return Tool{
		Name:        name,
		Description: "stub " + name,
		Parameters:  ObjectSchema(map[string]any{}),
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return result, nil
		},
	}
}

func TestRegistryExecute(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubTool("echo", map[string]any{"status": "ok"}))

	result, err := registry.Execute(context.Background(), "echo", nil)
	assert.NoError(t, err)
	assert.Equal(t, "ok", result["status"])
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	registry := NewRegistry()

	result, err := registry.Execute(context.Background(), "missing", map[string]any{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistryRegisterOverwrites(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubTool("echo", map[string]any{"version": "old"}))
	registry.Register(stubTool("echo", map[string]any{"version": "new"}))

	result, err := registry.Execute(context.Background(), "echo", nil)
	assert.NoError(t, err)
	assert.Equal(t, "new", result["version"])

	assert.Len(t, registry.List(), 1)
}

func TestRegistryListSortedByName(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubTool("zeta", nil))
	registry.Register(stubTool("alpha", nil))
	registry.Register(stubTool("mike", nil))

	descriptors := registry.List()
	assert.Len(t, descriptors, 3)
	assert.Equal(t, "alpha", descriptors[0].Name)
	assert.Equal(t, "mike", descriptors[1].Name)
	assert.Equal(t, "zeta", descriptors[2].Name)
}

func TestRegistryInlineErrorsPassThrough(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Tool{
		Name: "picky",
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			if args["content"] == nil {
				return map[string]any{"error": "content is required"}, nil
			}
			return map[string]any{"status": "saved"}, nil
		},
	})

	// Missing argument is data, not an error
	result, err := registry.Execute(context.Background(), "picky", map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, "content is required", result["error"])
}

func TestRegistryExecuteNilArgs(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Tool{
		Name: "args-check",
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			assert.NotNil(t, args)
			return map[string]any{}, nil
		},
	})

	_, err := registry.Execute(context.Background(), "args-check", nil)
	assert.NoError(t, err)
}

func TestRegistryHandlerFailurePropagates(t *testing.T) {
	registry := NewRegistry()
	boom := errors.New("storage down")
	registry.Register(Tool{
		Name: "broken",
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return nil, boom
		},
	})

	_, err := registry.Execute(context.Background(), "broken", nil)
	assert.ErrorIs(t, err, boom)
}
