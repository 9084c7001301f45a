package errors

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

// RespondWithServiceError maps an error returned by a service onto an API error.
// Record-store messages are passed through as the backend worded them.
func RespondWithServiceError(c *gin.Context, err error) {
	var (
		verr  *services.ValidationError
		batch *recordstore.BatchError
		te    *recordstore.TransportError
	)

	switch {
	case stderrors.As(err, &verr):
		BadRequestWithDetails(c, "Validation failed", verr.Fields)
	case stderrors.Is(err, services.ErrNotFound):
		NotFound(c, err.Error())
	case stderrors.As(err, &batch):
		UnprocessableEntity(c, ErrCodeRecordRejected, batch.Error())
	case stderrors.As(err, &te):
		BadGateway(c, te.Error())
	case stderrors.Is(err, services.ErrAIServiceNotConfigured):
		ServiceUnavailable(c, err.Error())
	case stderrors.Is(err, services.ErrAINoTasksGenerated),
		stderrors.Is(err, services.ErrAINoValidTasks),
		stderrors.Is(err, services.ErrAITooManyTasks):
		UnprocessableEntity(c, ErrCodeOperationFailed, err.Error())
	default:
		InternalError(c, "")
	}
}
