package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const tenantHeader = "X-Tenant-ID"

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateField(tenantID, model, page, fieldName, fieldType string) (*http.Response, error) {
	return d.send(tenantID, http.MethodPost, fmt.Sprintf("/v1/models/%s/fields", model), map[string]any{
		"page_name":  page,
		"field_name": fieldName,
		"field_type": fieldType,
	})
}

func (d *APIDriver) ListFields(tenantID, model, page string) (*http.Response, error) {
	path := fmt.Sprintf("/v1/models/%s/fields", model)
	if page != "" {
		path += "?page=" + page
	}
	return d.send(tenantID, http.MethodGet, path, nil)
}

func (d *APIDriver) GetField(tenantID, id string) (*http.Response, error) {
	return d.send(tenantID, http.MethodGet, "/v1/fields/"+id, nil)
}

func (d *APIDriver) MoveField(tenantID, id, page string) (*http.Response, error) {
	return d.send(tenantID, http.MethodPatch, "/v1/fields/"+id, map[string]any{"page_name": page})
}

func (d *APIDriver) DeleteField(tenantID, id string) (*http.Response, error) {
	return d.send(tenantID, http.MethodDelete, "/v1/fields/"+id, nil)
}

func (d *APIDriver) SaveValues(tenantID, model, record, page string, values map[string]*string) (*http.Response, error) {
	return d.send(tenantID, http.MethodPut, valuesPath(model, record, page), map[string]any{"values": values})
}

func (d *APIDriver) GetValues(tenantID, model, record, page string) (*http.Response, error) {
	return d.send(tenantID, http.MethodGet, valuesPath(model, record, page), nil)
}

func (d *APIDriver) DeletePageValues(tenantID, model, record, page string) (*http.Response, error) {
	return d.send(tenantID, http.MethodDelete, valuesPath(model, record, page), nil)
}

func (d *APIDriver) SaveColumns(tenantID, model, page string, columns json.RawMessage) (*http.Response, error) {
	return d.send(tenantID, http.MethodPut, columnsPath(model, page), map[string]any{"columns": columns})
}

func (d *APIDriver) GetColumns(tenantID, model, page string) (*http.Response, error) {
	return d.send(tenantID, http.MethodGet, columnsPath(model, page), nil)
}

func (d *APIDriver) ModelStats(tenantID, model string) (*http.Response, error) {
	return d.send(tenantID, http.MethodGet, fmt.Sprintf("/v1/models/%s/stats", model), nil)
}

func (d *APIDriver) send(tenantID, method, path string, body any) (*http.Response, error) {
	var payload *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		payload = bytes.NewBuffer(encoded)
	} else {
		payload = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, d.baseURL+path, payload)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		req.Header.Set(tenantHeader, tenantID)
	}
	return d.client.Do(req)
}

func valuesPath(model, record, page string) string {
	return fmt.Sprintf("/v1/models/%s/records/%s/pages/%s/values", model, record, page)
}

func columnsPath(model, page string) string {
	return fmt.Sprintf("/v1/models/%s/pages/%s/columns", model, page)
}
