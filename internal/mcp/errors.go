package mcp

import (
	"errors"
	"net/http"

	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
	"github.com/roivaz/motion-mcp/internal/motion"
)

// UnknownMethodError is returned for a top-level method other than
// tools/list and tools/call.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string { return "Unknown method: " + e.Method }

// InvalidParamsError reports a tools/call without usable params.
type InvalidParamsError struct {
	Reason string
}

func (e *InvalidParamsError) Error() string { return "invalid params: " + e.Reason }

// BadRequestError reports a request body that is not a JSON object.
type BadRequestError struct {
	Err error
}

func (e *BadRequestError) Error() string { return "invalid request body: " + e.Err.Error() }
func (e *BadRequestError) Unwrap() error { return e.Err }

type errorKind int

const (
	kindInternal errorKind = iota
	kindBadRequest
	kindUnknownMethod
	kindUnknownTool
	kindInvalidParams
	kindMissingArgument
	kindInvalidArguments
	kindNoWorkspace
	kindUpstream
	kindDecode
)

// statusByKind maps each failure class to the HTTP status of the /mcp
// response. Only a malformed body and an unknown method are 400s; an unknown
// tool name is a 500.
var statusByKind = map[errorKind]int{
	kindInternal:         http.StatusInternalServerError,
	kindBadRequest:       http.StatusBadRequest,
	kindUnknownMethod:    http.StatusBadRequest,
	kindUnknownTool:      http.StatusInternalServerError,
	kindInvalidParams:    http.StatusInternalServerError,
	kindMissingArgument:  http.StatusInternalServerError,
	kindInvalidArguments: http.StatusInternalServerError,
	kindNoWorkspace:      http.StatusInternalServerError,
	kindUpstream:         http.StatusInternalServerError,
	kindDecode:           http.StatusInternalServerError,
}

// classify returns the kind of err and the error whose message is shown to
// the caller. Wrapping context added on the way up is dropped for known kinds.
func classify(err error) (errorKind, error) {
	var (
		badRequest    *BadRequestError
		unknownMethod *UnknownMethodError
		unknownTool   *types.UnknownToolError
		invalidParams *InvalidParamsError
		missing       *types.MissingArgumentError
		invalidArgs   *types.InvalidArgumentsError
		upstream      *motion.UpstreamError
		decode        *motion.DecodeError
	)
	switch {
	case errors.As(err, &badRequest):
		return kindBadRequest, badRequest
	case errors.As(err, &unknownMethod):
		return kindUnknownMethod, unknownMethod
	case errors.As(err, &unknownTool):
		return kindUnknownTool, unknownTool
	case errors.As(err, &invalidParams):
		return kindInvalidParams, invalidParams
	case errors.As(err, &missing):
		return kindMissingArgument, missing
	case errors.As(err, &invalidArgs):
		return kindInvalidArguments, invalidArgs
	case errors.Is(err, motion.ErrNoWorkspace):
		return kindNoWorkspace, motion.ErrNoWorkspace
	case errors.As(err, &upstream):
		return kindUpstream, upstream
	case errors.As(err, &decode):
		return kindDecode, decode
	}
	return kindInternal, err
}

// StatusFor returns the HTTP status and caller-facing message for err.
func StatusFor(err error) (int, string) {
	kind, shown := classify(err)
	return statusByKind[kind], shown.Error()
}
