package newscheck

import (
	coreerrors "news-summarizer-api/core/errors"
)

// IsInputError reports whether err is a caller fault: no input, text too
// short, or an article that could not be fetched or extracted
func IsInputError(err error) bool {
	return coreerrors.IsInput(err)
}

// IsPipelineError reports whether err is an unexpected inference failure
func IsPipelineError(err error) bool {
	return coreerrors.IsPipeline(err)
}
