package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
	"github.com/jinofin/backend/internal/integration/persistence/model"
)

func (t *testContext) aTransactionExists(txType, amount, category, date string) error {
	return t.seedTransaction(t.householdID, txType, amount, category, date)
}

func (t *testContext) anotherHouseholdHasATransaction(amount, category, date string) error {
	return t.seedTransaction(t.otherHouseholdID, "expense", amount, category, date)
}

func (t *testContext) seedTransaction(householdID uuid.UUID, txType, amount, category, date string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid seed amount %q: %w", amount, err)
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid seed date %q: %w", date, err)
	}

	tx := entity.NewTransaction(
		householdID,
		entity.TransactionType(txType),
		parsedAmount,
		category,
		parsedDate.UTC(),
		"",
	)
	t.lastTransactionID = tx.ID

	return t.db.DbConn.Create(model.TransactionFromEntity(tx)).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil, "application/json")
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload, "application/json")
}

func (t *testContext) iSendARequestToWithCSV(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(body.Content)
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload, "text/csv")
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{household_id}}", t.householdID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte, contentType string) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.scopeToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.scopeToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{
		status: resp.StatusCode,
		body:   responseBody,
	}
	t.captureTransactionID(responseBody)

	return nil
}

// captureTransactionID remembers the id of the last created transaction so
// later steps can reference it via the {{transaction_id}} placeholder.
func (t *testContext) captureTransactionID(body []byte) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return
	}

	idValue, ok := data["id"].(string)
	if !ok {
		return
	}

	if id, err := uuid.Parse(idValue); err == nil {
		t.lastTransactionID = id
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.status, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	var js json.RawMessage
	if err := json.Unmarshal(t.response.body, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	expected = t.replacePlaceholders(expected)
	if !strings.Contains(string(t.response.body), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(unexpected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	unexpected = t.replacePlaceholders(unexpected)
	if strings.Contains(string(t.response.body), unexpected) {
		return fmt.Errorf("response contains %q. Body: %s", unexpected, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	expected = t.replacePlaceholders(expected)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if _, err := t.responseField(field); err == nil {
		return fmt.Errorf("field %q unexpectedly present. Body: %s", field, string(t.response.body))
	}
	return nil
}

// responseField resolves a dot-separated path into the response JSON.
// Numeric segments index into arrays, so "transactions.0.amount" works.
func (t *testContext) responseField(path string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response received")
	}

	var current any
	if err := json.Unmarshal(t.response.body, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(t.response.body))
			}
			current = value
		case []any:
			index := -1
			if _, err := fmt.Sscanf(segment, "%d", &index); err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(t.response.body))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(t.response.body))
		}
	}

	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d objects in %q, found %d", expected, table, count)
	}
	return nil
}
