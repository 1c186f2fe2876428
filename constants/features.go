package constants

// Amenity choices offered by the form. The API additionally accepts the
// yes/no spelling used in the training data.
const (
	Required    = "Required"
	NotRequired = "Not Required"
	Yes         = "yes"
	No          = "no"
)

const (
	SemiFurnished = "semi-furnished"
	Unfurnished   = "unfurnished"
	Furnished     = "furnished"
)

const (
	LowPricing    = "Low Pricing"
	MediumPricing = "Medium Pricing"
	HighPricing   = "High Pricing"
)

// Prediction sources recorded in metrics and history.
const (
	SourceForm = "form"
	SourceAPI  = "api"
	SourceCLI  = "cli"
)

// Option lists in the order the form shows them.
var (
	AmenityOptions    = []string{Required, NotRequired}
	FurnishingOptions = []string{SemiFurnished, Unfurnished, Furnished}
	PriceCategories   = []string{LowPricing, MediumPricing, HighPricing}
)
