package insights

import (
	"embed"

	"gopkg.in/yaml.v2"

	apperrors "rwexcli/internal/errors"
)

// The policy and youth/SME catalogs are curated content, not derived data.
// They ship embedded so a run never depends on a catalog file being present.

//go:embed catalog/policies.yaml catalog/youth_sme.yaml
var catalogFS embed.FS

// PolicyCatalog returns the embedded policy recommendation catalog
func PolicyCatalog() ([]PolicyRecommendation, error) {
	data, err := catalogFS.ReadFile("catalog/policies.yaml")
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read policy catalog", err)
	}

	var policies []PolicyRecommendation
	if err := yaml.Unmarshal(data, &policies); err != nil {
		return nil, apperrors.NewConfigError("failed to parse policy catalog", err)
	}
	return policies, nil
}

// YouthSMECatalog returns the embedded youth and SME opportunity catalog
func YouthSMECatalog() ([]YouthSMEOpportunity, error) {
	data, err := catalogFS.ReadFile("catalog/youth_sme.yaml")
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read youth/SME catalog", err)
	}

	var opportunities []YouthSMEOpportunity
	if err := yaml.Unmarshal(data, &opportunities); err != nil {
		return nil, apperrors.NewConfigError("failed to parse youth/SME catalog", err)
	}
	return opportunities, nil
}
