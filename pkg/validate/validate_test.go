package validate_test

import (
	"testing"

	"github.com/vitralapp/vitral/pkg/validate"
)

type glassInput struct {
	Name        string   `json:"name"        validate:"required,min=2,max=255"`
	Purpose     string   `json:"purpose"     validate:"nullable,in=general,security,insulation,decorative"`
	ThicknessMm float64  `json:"thicknessMm" validate:"required,gt=0,lte=100"`
	PricePerSqm *float64 `json:"pricePerSqm" validate:"nullable,gt=0"`
	Currency    string   `json:"currency"    validate:"nullable,regex=^[A-Z]{3}$"`
	Key         string   `json:"key"         validate:"nullable,snake_case"`
}

func hasPath(errs []validate.FieldError, path string) bool {
	for _, e := range errs {
		if e.Path == path {
			return true
		}
	}
	return false
}

func TestValidInput(t *testing.T) {
	price := 48000.0
	errs := validate.Struct(glassInput{
		Name:        "Cristal Claro 4mm",
		Purpose:     "general",
		ThicknessMm: 4,
		PricePerSqm: &price,
		Currency:    "COP",
		Key:         "clear_glass",
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(glassInput{})
	if len(errs) == 0 {
		t.Fatal("expected required errors")
	}
	if !hasPath(errs, "name") {
		t.Error("expected name to be required")
	}
	if !hasPath(errs, "thicknessMm") {
		t.Error("expected thicknessMm to be required")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Days int `json:"days" validate:"required,gte=1,lte=365"`
	}
	if errs := validate.Struct(in{Days: 400}); !hasPath(errs, "days") {
		t.Error("expected days > 365 to fail")
	}
	if errs := validate.Struct(in{Days: 15}); len(errs) != 0 {
		t.Errorf("expected days 15 to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=draft,published"`
	}
	if errs := validate.Struct(in{Status: "archived"}); !hasPath(errs, "status") {
		t.Error("expected invalid status to fail")
	}
	if errs := validate.Struct(in{Status: "draft"}); len(errs) != 0 {
		t.Errorf("expected draft to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"nullable,email"`
	}
	// Empty value skips the remaining rules.
	if errs := validate.Struct(in{Email: ""}); len(errs) != 0 {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// A non-empty value still has to satisfy them.
	if errs := validate.Struct(in{Email: "not-an-email"}); !hasPath(errs, "email") {
		t.Error("expected invalid email to fail")
	}
}

func TestNilPointerSkippedUnlessRequired(t *testing.T) {
	type in struct {
		UValue *float64 `json:"uValue" validate:"nullable,gt=0"`
		Price  *float64 `json:"price"  validate:"required,gt=0"`
	}
	errs := validate.Struct(in{})
	if hasPath(errs, "uValue") {
		t.Error("expected nil nullable pointer to pass")
	}
	if !hasPath(errs, "price") {
		t.Error("expected nil required pointer to fail")
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Factor float64 `json:"factor" validate:"required,between=0,1"`
	}
	if errs := validate.Struct(in{Factor: 1.5}); !hasPath(errs, "factor") {
		t.Error("expected factor > 1 to fail")
	}
	if errs := validate.Struct(in{Factor: 0.42}); len(errs) != 0 {
		t.Errorf("expected factor 0.42 to pass: %v", errs)
	}
}

func TestRegexRule(t *testing.T) {
	type in struct {
		Currency string `json:"currency" validate:"required,regex=^[A-Z]{3}$"`
	}
	if errs := validate.Struct(in{Currency: "cop"}); !hasPath(errs, "currency") {
		t.Error("expected lowercase currency to fail")
	}
	if errs := validate.Struct(in{Currency: "COP"}); len(errs) != 0 {
		t.Errorf("expected COP to pass: %v", errs)
	}
}

func TestSnakeCaseRule(t *testing.T) {
	type in struct {
		Key string `json:"key" validate:"required,snake_case"`
	}
	if errs := validate.Struct(in{Key: "thermal_insulation"}); len(errs) != 0 {
		t.Errorf("expected snake_case to pass: %v", errs)
	}
	if errs := validate.Struct(in{Key: "Thermal-Insulation"}); !hasPath(errs, "key") {
		t.Error("expected mixed case with dashes to fail")
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	errs := validate.Struct(in{Name: "x"})
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got: %v", errs)
	}
	if errs[0].Code != "min" {
		t.Errorf("expected min to fail first, got %q", errs[0].Code)
	}
}
