package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// iAmAuthenticated logs in with the test dashboard password and stores
// the access token for subsequent requests.
func iAmAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("missing test context")
	}

	body, err := json.Marshal(map[string]string{"password": testDashboardPassword})
	if err != nil {
		return err
	}

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	tc.accessToken = auth.AccessToken
	tc.requestHeaders["Authorization"] = "Bearer " + auth.AccessToken
	return nil
}

func iSetHeaderTo(ctx context.Context, name, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("missing test context")
	}
	tc.requestHeaders[name] = value
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return doRequest(ctx, method, path, nil, "")
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return doRequest(ctx, method, path, strings.NewReader(body.Content), "application/json")
}

// iUploadAFileNamedWithContent posts the docstring as a multipart file
// upload to the import endpoint.
func iUploadAFileNamedWithContent(ctx context.Context, filename string, content *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("missing test context")
	}

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(content.Content)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return doRequest(ctx, http.MethodPost, "/api/v1/business/import", &buffer, writer.FormDataContentType())
}

func theServerRestarts(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("missing test context")
	}

	tc.server.Close()
	return tc.startServer()
}

func doRequest(ctx context.Context, method, path string, body io.Reader, contentType string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("missing test context")
	}

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, value := range tc.requestHeaders {
		req.Header.Set(name, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.response = resp
	tc.responseBody = responseBody
	return nil
}
