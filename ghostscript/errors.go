package ghostscript

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	renderValidationCode   = "RENDER_VALIDATION_FAILED"
	renderContextCanceled  = "RENDER_CONTEXT_CANCELED"
	renderContextTimeout   = "RENDER_CONTEXT_TIMEOUT"
	renderExecuteFailed    = "RENDER_EXECUTION_FAILED"
	renderOutputFailedCode = "RENDER_OUTPUT_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "render options are invalid").
		WithTextCode(renderValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "interpreter deadline exceeded").
			WithTextCode(renderContextTimeout)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "interpreter run cancelled").
		WithTextCode(renderContextCanceled)
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "interpreter could not be run").
		WithTextCode(renderExecuteFailed)
}

func wrapOutputError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "interpreter output could not be prepared").
		WithTextCode(renderOutputFailedCode)
}
