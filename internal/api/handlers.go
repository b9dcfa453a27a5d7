package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitpack/huffman-compression-service/internal/compression"
	"github.com/bitpack/huffman-compression-service/internal/huffman"
)

const maxFileSize = 50 * 1024 * 1024 // 50MB

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleCompress handles file compression requests
func HandleCompress(c *gin.Context) {
	fileContent, filename, ok := readUpload(c)
	if !ok {
		return
	}

	compressed, stats, err := compression.Compress(fileContent)
	if err != nil {
		if errors.Is(err, huffman.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Empty file",
				Code:    http.StatusBadRequest,
				Message: "Cannot compress an empty file",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Compression failed",
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	// Set response headers for file download plus compression statistics
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.hc", getBaseFilename(filename)))
	c.Header("Content-Length", strconv.Itoa(len(compressed)))
	c.Header("X-Algorithm", stats.Algorithm)
	c.Header("X-Original-Size", strconv.Itoa(stats.OriginalSize))
	c.Header("X-Compressed-Size", strconv.Itoa(stats.ProcessedSize))
	c.Header("X-Compression-Ratio", fmt.Sprintf("%.2f", stats.CompressionRatio))

	c.Data(http.StatusOK, "application/octet-stream", compressed)
}

// HandleDecompress handles file decompression requests
func HandleDecompress(c *gin.Context) {
	fileContent, filename, ok := readUpload(c)
	if !ok {
		return
	}

	decompressed, stats, err := compression.Decompress(fileContent)
	if err != nil {
		if errors.Is(err, huffman.ErrCorruptStream) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "Corrupt stream",
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Decompression failed",
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_decompressed", getBaseFilename(filename)))
	c.Header("Content-Length", strconv.Itoa(len(decompressed)))
	c.Header("X-Algorithm", stats.Algorithm)
	c.Header("X-Compressed-Size", strconv.Itoa(stats.OriginalSize))
	c.Header("X-Original-Size", strconv.Itoa(stats.ProcessedSize))

	c.Data(http.StatusOK, "application/octet-stream", decompressed)
}

// HandleInfo provides information about the service
func HandleInfo(c *gin.Context) {
	info := map[string]interface{}{
		"service": "Huffman Compression Service",
		"version": "1.0.0",
		"algorithm": map[string]interface{}{
			"name":        compression.Algorithm,
			"description": "Huffman coding - lossless data compression using canonical variable-length codes",
		},
		"limits": map[string]interface{}{
			"max_file_size": fmt.Sprintf("%d bytes (%.1f MB)", maxFileSize, float64(maxFileSize)/(1024*1024)),
		},
		"endpoints": map[string]interface{}{
			"compress":   "POST /compress - Upload file for compression",
			"decompress": "POST /decompress - Upload file for decompression",
			"info":       "GET /info - Get service information",
			"health":     "GET /health - Health check",
		},
	}

	c.JSON(http.StatusOK, info)
}

// HandleHealth provides a simple health check endpoint
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "huffman-compression-service",
	})
}

// readUpload fetches and size-checks the uploaded "file" form field. A false
// return means the error response was already written.
func readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "File upload error",
			Code:    http.StatusBadRequest,
			Message: "No file provided or file upload failed",
		})
		return nil, "", false
	}
	defer file.Close()

	if header.Size > maxFileSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "File too large",
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Maximum file size is %d bytes", maxFileSize),
		})
		return nil, "", false
	}

	fileContent, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "File read error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
		return nil, "", false
	}
	return fileContent, header.Filename, true
}

// getBaseFilename strips the extension from an uploaded filename.
func getBaseFilename(filename string) string {
	if filename == "" {
		return "file"
	}
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[:i]
		}
	}
	return filename
}
