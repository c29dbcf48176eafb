package rghost

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrDocumentDone is recorded when a document is changed after Done.
var ErrDocumentDone = errors.New("rghost: document is done")

const (
	documentInvalidCode = "DOCUMENT_INVALID"
	documentRenderCode  = "DOCUMENT_RENDER_FAILED"
)

func wrapDocumentError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "document is invalid").
		WithTextCode(documentInvalidCode)
}

func wrapRenderError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "document could not be rendered").
		WithTextCode(documentRenderCode)
}
