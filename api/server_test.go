package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lachdavey/ledgerdoc/parser"
)

const statementText = `ING Bank (Australia) Limited
Savings Maximiser
Statement Period: 01/06/2024 to 30/06/2024
14/06/2024 Salary Deposit Acme Pty Ltd 2,200.00 2,333.96
30/06/2024 1.06 Interest Credit - Receipt 905815 2335.02
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(DefaultConfig(), parser.NewDefaultRegistry())
}

// postText submits text through the same multipart form the upload
// clients use.
func postText(t *testing.T, srv *Server, text string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("text", text))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestParse_Statement(t *testing.T) {
	rec := postText(t, newTestServer(t), statementText)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result parser.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, parser.KindStatement, result.Kind)
	require.NotNil(t, result.Statement)
	assert.Equal(t, "ING", result.Statement.BankName)
	assert.Len(t, result.Statement.Transactions, 2)
	assert.Nil(t, result.Payslip)
}

func TestParse_UnrecognizedDocument(t *testing.T) {
	rec := postText(t, newTestServer(t), "Meeting notes, nothing financial here.")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unrecognized document format")
}

func TestParse_EmptyResult(t *testing.T) {
	text := "ING\nSavings Maximiser\nStatement Period: 01/06/2024 to 30/06/2024\nOpening balance 100.00\n"

	rec := postText(t, newTestServer(t), text)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "no data could be extracted")
}

func TestParse_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parse", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestParse_MissingUpload(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
