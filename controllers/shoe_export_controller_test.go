package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/carneiroDotDev/sole-and-ankle/views"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExportContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSendExportFailureLeavesResponseUnwritten(t *testing.T) {
	c, w := testExportContext()
	failing := exportFormat{
		contentType: "application/pdf",
		write: func(out io.Writer, cards []views.ShoeCardView) error {
			_, _ = out.Write([]byte("%PDF-partial"))
			return errors.New("font not found")
		},
	}

	err := sendExport(c, "catalog.pdf", failing, nil)
	require.Error(t, err)
	assert.False(t, c.Writer.Written())
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	utils.InternalServerError(c, "Failed to generate export", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp utils.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body is a clean JSON envelope")
	assert.Equal(t, "error", resp.Status)
}

func TestSendExportWritesDocument(t *testing.T) {
	c, w := testExportContext()
	cards := []views.ShoeCardView{{Name: "Air Jordan 1 Mid", Slug: "air-jordan-1", Price: "$120.00", Variant: views.VariantDefault, ColorLabel: "2 Colors"}}

	require.NoError(t, sendExport(c, "catalog.xlsx", exportFormats["xlsx"], cards))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=catalog.xlsx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, exportFormats["xlsx"].contentType, w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}
