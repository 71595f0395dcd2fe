package steps

import (
	"encoding/json"
	"net/http"
)

type valuesResponse struct {
	ModelName string             `json:"model_name"`
	RecordID  string             `json:"record_id"`
	PageName  string             `json:"page_name"`
	Values    map[string]*string `json:"values"`
}

func (fc *FeatureContext) iSaveValueForRecordOnPage(model, record, field, value, page string) error {
	err := fc.iSaveValueAs(field, value, model, record, page)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iSaveValueAs(field, value, model, record, page string) error {
	resp, err := fc.apiDriver.SaveValues(fc.tenantID, model, record, page, map[string]*string{field: &value})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iClearPageOfRecord(page, model, record string) error {
	resp, err := fc.apiDriver.DeletePageValues(fc.tenantID, model, record, page)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) recordShouldHaveNoValuesOnPage(model, record, page string) error {
	values := fc.valuesOf(model, record, page)
	fc.require.Empty(values.Values)
	return nil
}

func (fc *FeatureContext) recordShouldHaveValueOnPage(model, record, field, value, page string) error {
	values := fc.valuesOf(model, record, page)
	fc.require.Len(values.Values, 1)
	stored, ok := values.Values[field]
	fc.require.True(ok, "field %s missing on page %s", field, page)
	fc.require.NotNil(stored)
	fc.require.Equal(value, *stored)
	return nil
}

func (fc *FeatureContext) valuesOf(model, record, page string) valuesResponse {
	resp, err := fc.apiDriver.GetValues(fc.tenantID, model, record, page)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var values valuesResponse
	fc.require.NoError(fc.decodeBody(resp.Body, &values))
	return values
}

func (fc *FeatureContext) theColumnsOfModelPageAre(model, page, columns string) error {
	resp, err := fc.apiDriver.SaveColumns(fc.tenantID, model, page, json.RawMessage(columns))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)
	return nil
}

func (fc *FeatureContext) theColumnsOfModelPageShouldBe(model, page, columns string) error {
	resp, err := fc.apiDriver.GetColumns(fc.tenantID, model, page)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data struct {
		Columns json.RawMessage `json:"columns"`
	}
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.require.JSONEq(columns, string(data.Columns))
	return nil
}
