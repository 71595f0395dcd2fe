package steps

import (
	"net/http"
)

func (fc *FeatureContext) aFieldOnModelPage(fieldType, name, model, page string) error {
	err := fc.iCreateAFieldOnModelPage(fieldType, name, model, page)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iCreateAFieldOnModelPage(fieldType, name, model, page string) error {
	resp, err := fc.apiDriver.CreateField(fc.tenantID, model, page, name, fieldType)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		err = fc.decodeBody(resp.Body, &data)
		fc.require.NoError(err)
		fc.responseData = data
		if id, ok := data["id"].(string); ok {
			fc.fieldIDs[name] = id
		}
	}
	return nil
}

func (fc *FeatureContext) iMoveFieldToPage(name, page string) error {
	resp, err := fc.apiDriver.MoveField(fc.tenantID, fc.fieldID(name), page)
	fc.require.NoError(err)
	fc.response = resp
	fc.require.Equal(http.StatusOK, resp.StatusCode)
	return nil
}

func (fc *FeatureContext) iDeleteField(name string) error {
	resp, err := fc.apiDriver.DeleteField(fc.tenantID, fc.fieldID(name))
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) fieldShouldBeOnPage(name, page string) error {
	resp, err := fc.apiDriver.GetField(fc.tenantID, fc.fieldID(name))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.require.Equal(page, data["page_name"])
	return nil
}

func (fc *FeatureContext) modelShouldHaveFields(model string, count int) error {
	resp, err := fc.apiDriver.ListFields(fc.tenantID, model, "")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var list struct {
		Data []map[string]any `json:"data"`
	}
	fc.require.NoError(fc.decodeBody(resp.Body, &list))
	fc.require.Len(list.Data, count)
	return nil
}

func (fc *FeatureContext) fieldID(name string) string {
	id, ok := fc.fieldIDs[name]
	fc.require.True(ok, "field %s was not created in this scenario", name)
	return id
}
