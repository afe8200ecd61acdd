// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatfile

// Section long names as they appear in the flat file. Only the ones the
// reader treats specially are named; everything else is looked up through
// Sections.
const (
	SectionProtein   = "PROTEIN"
	SectionReference = "REFERENCE"
)

// Sections maps every BRENDA section name to the short code that prefixes the
// first line of each record in that section.
var Sections = map[string]string{
	"ACTIVATING_COMPOUND":            "AC",
	"APPLICATION":                    "AP",
	"COFACTOR":                       "CF",
	"CLONED":                         "CL",
	"CRYSTALLIZATION":                "CR",
	"ENGINEERING":                    "EN",
	"GENERAL_STABILITY":              "GS",
	"IC50_VALUE":                     "IC5",
	"INHIBITORS":                     "IN",
	"KI_VALUE":                       "KI",
	"KM_VALUE":                       "KM",
	"LOCALIZATION":                   "LO",
	"METALS_IONS":                    "ME",
	"MOLECULAR_WEIGHT":               "MW",
	"NATURAL_SUBSTRATE_PRODUCT":      "NSP",
	"OXIDATION_STABILITY":            "OS",
	"ORGANIC_SOLVENT_STABILITY":      "OSS",
	"PH_OPTIMUM":                     "PHO",
	"PH_RANGE":                       "PHR",
	"PH_STABILITY":                   "PHS",
	"PI_VALUE":                       "PI",
	"POSTTRANSLATIONAL_MODIFICATION": "PM",
	"PROTEIN":                        "PR",
	"PURIFICATION":                   "PU",
	"REACTION":                       "RE",
	"REFERENCE":                      "RF",
	"RENATURED":                      "REN",
	"RECOMMENDED_NAME":               "RN",
	"REACTION_TYPE":                  "RT",
	"SPECIFIC_ACTIVITY":              "SA",
	"SYSTEMATIC_NAME":                "SN",
	"SUBSTRATE_PRODUCT":              "SP",
	"STORAGE_STABILITY":              "SS",
	"SOURCE_TISSUE":                  "ST",
	"SUBUNITS":                       "SU",
	"SYNONYMS":                       "SY",
	"TURNOVER_NUMBER":                "TN",
	"TEMPERATURE_OPTIMUM":            "TO",
	"TEMPERATURE_RANGE":              "TR",
	"TEMPERATURE_STABILITY":          "TS",
}
