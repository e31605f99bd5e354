package hfimage_test

import (
	"errors"
	"testing"

	"texttools/internal/infra/hfimage"
)

func TestNewClientFromEnv_RequiresToken(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "")

	_, err := hfimage.NewClientFromEnv()
	if !errors.Is(err, hfimage.ErrMissingToken) {
		t.Fatalf("NewClientFromEnv() error = %v, want ErrMissingToken", err)
	}
}

func TestNewClientFromEnv_WithToken(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "hf_testtoken1234")

	client, err := hfimage.NewClientFromEnv()
	if err != nil {
		t.Fatalf("NewClientFromEnv() error = %v", err)
	}
	if client == nil {
		t.Fatal("NewClientFromEnv() returned nil client")
	}
}
