package errors

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"codeberg.org/algopatterns/retrieval/internal/logger"
	"codeberg.org/algopatterns/retrieval/internal/retriever"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// error categories for classification
const (
	CategoryEmbedding = "embedding"
	CategoryIndex     = "index"
	CategoryDatabase  = "database"
	CategoryNetwork   = "network"
	CategoryTimeout   = "timeout"
	CategoryUnknown   = "unknown"
)

type errorInfo struct {
	category  string
	sanitized string
}

// maps a retrieval failure to the right upstream-fault response.
// The engine guarantees embedder and index failures arrive as typed
// errors, so this is the single place they become HTTP status codes.
func UpstreamError(c *gin.Context, err error) {
	info := classifyError(err)
	fields := []any{
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", c.GetString("request_id"),
	}

	var embErr *retriever.EmbeddingError
	if errors.As(err, &embErr) {
		logger.ErrorErr(err, "embedding backend failed", fields...)
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   CodeEmbeddingFailed,
			Message: "embedding backend request failed",
			Details: info.sanitized,
		})

		return
	}

	var idxErr *retriever.IndexQueryError
	if errors.As(err, &idxErr) {
		logger.ErrorErr(err, "vector index query failed", fields...)
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   CodeIndexFailed,
			Message: "vector index request failed",
			Details: info.sanitized,
		})

		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.ErrorErr(err, "retrieval timed out", fields...)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Error:   CodeUpstreamTimeout,
			Message: "retrieval timed out",
			Details: info.sanitized,
		})

		return
	}

	InternalError(c, "retrieval failed", err)
}

// analyzes an error and returns its category and sanitized message
func classifyError(err error) errorInfo {
	if err == nil {
		return errorInfo{CategoryUnknown, ""}
	}

	env := os.Getenv("ENVIRONMENT")
	isProduction := env == "production"

	var embErr *retriever.EmbeddingError
	if errors.As(err, &embErr) {
		return errorInfo{
			category:  CategoryEmbedding,
			sanitized: ternary(isProduction, "embedding backend request failed", err.Error()),
		}
	}

	var idxErr *retriever.IndexQueryError
	if errors.As(err, &idxErr) {
		return errorInfo{
			category:  CategoryIndex,
			sanitized: ternary(isProduction, "vector index request failed", err.Error()),
		}
	}

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errorInfo{
			category:  CategoryDatabase,
			sanitized: ternary(isProduction, "database operation failed", err.Error()),
		}
	}

	// context errors
	if errors.Is(err, context.DeadlineExceeded) {
		return errorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if errors.Is(err, context.Canceled) {
		return errorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request canceled", err.Error()),
		}
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return errorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "postgres") || strings.Contains(errMsg, "pgx") {
		return errorInfo{
			category:  CategoryDatabase,
			sanitized: ternary(isProduction, "database operation failed", err.Error()),
		}
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return errorInfo{
			category:  CategoryNetwork,
			sanitized: ternary(isProduction, "connection error occurred", err.Error()),
		}
	}

	return errorInfo{
		category:  CategoryUnknown,
		sanitized: ternary(isProduction, "an error occurred", err.Error()),
	}
}

// ternary helper for cleaner conditional assignment
func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}

	return falseVal
}
