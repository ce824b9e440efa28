package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	var payload any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return fmt.Errorf("response is not valid JSON: %w (body: %s)", err, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, text string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response does not contain %q (body: %s)", text, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	if got := fmt.Sprintf("%v", value); got != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	var items []any
	if err := json.Unmarshal(tc.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON list: %w (body: %s)", err, tc.responseBody)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d (body: %s)", count, len(items), tc.responseBody)
	}
	return nil
}

// responseField resolves a dot-separated path in the JSON response body.
func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var payload any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w (body: %s)", err, tc.responseBody)
	}

	current := payload
	for _, part := range strings.Split(field, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in response (body: %s)", part, tc.responseBody)
		}
		current, ok = object[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response (body: %s)", field, tc.responseBody)
		}
	}
	return current, nil
}
