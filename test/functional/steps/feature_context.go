package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"customfields-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	tenantID     string
	fieldIDs     map[string]string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	if externalURL := os.Getenv("EXTERNAL_API_URL"); externalURL != "" {
		baseURL = externalURL
	}

	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
		fieldIDs:  make(map[string]string),
	}
}

func IsExternalMode() bool {
	return os.Getenv("EXTERNAL_API_URL") != ""
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	ctx.Given(`^a "([^"]*)" field "([^"]*)" on model "([^"]*)" page "([^"]*)"$`, fc.aFieldOnModelPage)
	ctx.When(`^I create a "([^"]*)" field "([^"]*)" on model "([^"]*)" page "([^"]*)"$`, fc.iCreateAFieldOnModelPage)
	ctx.When(`^I move field "([^"]*)" to page "([^"]*)"$`, fc.iMoveFieldToPage)
	ctx.When(`^I delete field "([^"]*)"$`, fc.iDeleteField)
	ctx.Then(`^field "([^"]*)" should be on page "([^"]*)"$`, fc.fieldShouldBeOnPage)
	ctx.Then(`^model "([^"]*)" should have (\d+) fields?$`, fc.modelShouldHaveFields)

	ctx.Given(`^"([^"]*)" record "([^"]*)" has "([^"]*)" = "([^"]*)" saved on page "([^"]*)"$`, fc.iSaveValueForRecordOnPage)
	ctx.When(`^I save "([^"]*)" = "([^"]*)" for "([^"]*)" record "([^"]*)" on page "([^"]*)"$`, fc.iSaveValueAs)
	ctx.When(`^I clear page "([^"]*)" of "([^"]*)" record "([^"]*)"$`, fc.iClearPageOfRecord)
	ctx.Then(`^"([^"]*)" record "([^"]*)" should have no values on page "([^"]*)"$`, fc.recordShouldHaveNoValuesOnPage)
	ctx.Then(`^"([^"]*)" record "([^"]*)" should have "([^"]*)" = "([^"]*)" on page "([^"]*)"$`, fc.recordShouldHaveValueOnPage)

	ctx.Given(`^the columns of "([^"]*)" page "([^"]*)" are '([^']*)'$`, fc.theColumnsOfModelPageAre)
	ctx.Then(`^the columns of "([^"]*)" page "([^"]*)" should be '([^']*)'$`, fc.theColumnsOfModelPageShouldBe)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

// reset gives every scenario a tenant of its own, so scenarios sharing one
// server never see each other's fields.
func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.tenantID = "functional-" + uuid.NewString()
	fc.fieldIDs = make(map[string]string)
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(bodyBytes, target)
}
