package factories

import (
	"time"

	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/pkg/validate"
)

// TenantInput is the environment-derived business configuration. It is the
// one gateway input that does not come from a preset.
type TenantInput struct {
	BusinessName      string `json:"businessName"      validate:"required,min=2,max=255"`
	Currency          string `json:"currency"          validate:"required,regex=^[A-Z]{3}$"`
	Locale            string `json:"locale"            validate:"required,regex=^[a-z]{2}-[A-Z]{2}$"`
	Timezone          string `json:"timezone"          validate:"required"`
	QuoteValidityDays int    `json:"quoteValidityDays" validate:"required,gte=1,lte=365"`
	ContactEmail      string `json:"contactEmail"      validate:"nullable,email"`
	ContactPhone      string `json:"contactPhone"      validate:"nullable,max=50"`
	ContactAddress    string `json:"contactAddress"    validate:"nullable,max=500"`
}

// Tenant validates the business configuration and maps it to the singleton
// TenantConfig row.
func Tenant(in TenantInput, opts Options[TenantInput]) (models.TenantConfig, []validate.FieldError) {
	if opts.Overrides != nil {
		in = mergeTenant(in, *opts.Overrides)
	}

	if !opts.SkipValidation {
		errs := validate.Struct(in)

		if in.Timezone != "" {
			if _, err := time.LoadLocation(in.Timezone); err != nil {
				errs = append(errs, validate.NewFieldError("timezone", "timezone",
					"The timezone must be a valid IANA identifier.",
					map[string]any{"received": in.Timezone}))
			}
		}

		if len(errs) > 0 {
			return models.TenantConfig{}, errs
		}
	}

	return models.TenantConfig{
		Key:               models.TenantConfigKey,
		BusinessName:      in.BusinessName,
		Currency:          in.Currency,
		Locale:            in.Locale,
		Timezone:          in.Timezone,
		QuoteValidityDays: in.QuoteValidityDays,
		ContactEmail:      in.ContactEmail,
		ContactPhone:      in.ContactPhone,
		ContactAddress:    in.ContactAddress,
	}, nil
}

func mergeTenant(base, over TenantInput) TenantInput {
	if over.BusinessName != "" {
		base.BusinessName = over.BusinessName
	}
	if over.Currency != "" {
		base.Currency = over.Currency
	}
	if over.Locale != "" {
		base.Locale = over.Locale
	}
	if over.Timezone != "" {
		base.Timezone = over.Timezone
	}
	if over.QuoteValidityDays != 0 {
		base.QuoteValidityDays = over.QuoteValidityDays
	}
	if over.ContactEmail != "" {
		base.ContactEmail = over.ContactEmail
	}
	if over.ContactPhone != "" {
		base.ContactPhone = over.ContactPhone
	}
	if over.ContactAddress != "" {
		base.ContactAddress = over.ContactAddress
	}
	return base
}
