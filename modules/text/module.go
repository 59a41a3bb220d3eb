// Package text registers string helpers as callable functions.
package text

import (
	"context"

	"github.com/vk/componentgo/internal/registry"
	"github.com/vk/componentgo/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

type JoinInput struct {
	Tokens []string `arg:"tokens"`
	Sep    string   `arg:"sep,optional"`
}

type StripTokenInput struct {
	Value string `arg:"value"`
	Token string `arg:"token"`
}

type DefaultStringInput struct {
	Value   string `arg:"value,optional"`
	Default string `arg:"default"`
}

type UniquifyInput struct {
	Value string   `arg:"value"`
	Taken []string `arg:"taken,optional"`
}

// Join joins the non-empty tokens with sep.
func Join(ctx context.Context, input *JoinInput) (string, error) {
	return textutil.Join(input.Tokens, input.Sep), nil
}

// StripToken removes every whitespace-delimited occurrence of token from value.
func StripToken(ctx context.Context, input *StripTokenInput) (string, error) {
	return textutil.StripToken(input.Value, input.Token), nil
}

// DefaultString returns value unless it is empty.
func DefaultString(ctx context.Context, input *DefaultStringInput) (string, error) {
	return textutil.DefaultString(input.Value, input.Default), nil
}

// Uniquify returns value, suffixed when needed so that it is not in taken.
func Uniquify(ctx context.Context, input *UniquifyInput) (string, error) {
	set := make(map[string]struct{}, len(input.Taken))
	for _, s := range input.Taken {
		set[s] = struct{}{}
	}
	return textutil.UniquifyString(input.Value, set)
}

// Register registers the string functions under the "text" namespace.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("text.Join", &registry.Factory{
		NewInput: func() any { return &JoinInput{Sep: " "} },
		Fn:       Join,
	})
	r.RegisterFunction("text.StripToken", &registry.Factory{
		NewInput: func() any { return new(StripTokenInput) },
		Fn:       StripToken,
	})
	r.RegisterFunction("text.DefaultString", &registry.Factory{
		NewInput: func() any { return new(DefaultStringInput) },
		Fn:       DefaultString,
	})
	r.RegisterFunction("text.Uniquify", &registry.Factory{
		NewInput: func() any { return new(UniquifyInput) },
		Fn:       Uniquify,
	})
}
