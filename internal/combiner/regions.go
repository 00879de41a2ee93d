package combiner

// Region labels used for partner grouping
const (
	RegionAfrica   = "Africa"
	RegionEurope   = "Europe & Central Asia"
	RegionAsia     = "Asia & Middle East"
	RegionAmericas = "Americas"
	RegionOceania  = "Oceania"
	RegionOther    = "Other/Regional Grouping"
)

// regionByCountry maps WITS partner names to regions. Names follow the
// WITS reporting convention (e.g. "Egypt, Arab Rep.", "Ethiopia(excludes
// Eritrea)"), so lookups must use the raw partner name after trimming.
var regionByCountry = buildRegionIndex()

func buildRegionIndex() map[string]string {
	index := make(map[string]string, 170)

	africa := []string{
		"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi", "Cameroon",
		"Cape Verde", "Central African Republic", "Chad", "Comoros", "Congo, Rep.",
		"Congo, Dem. Rep.", "Cote d'Ivoire", "Djibouti", "Egypt, Arab Rep.", "Equatorial Guinea",
		"Eritrea", "Eswatini", "Ethiopia(excludes Eritrea)", "Gabon", "Gambia, The", "Ghana",
		"Guinea", "Kenya", "Lesotho", "Liberia", "Libya", "Madagascar", "Malawi", "Mali",
		"Mauritania", "Mauritius", "Morocco", "Mozambique", "Namibia", "Niger", "Nigeria",
		"Sao Tome and Principe", "Senegal", "Seychelles", "Sierra Leone", "Somalia",
		"South Africa", "South Sudan", "Sudan", "Tanzania", "Togo", "Tunisia", "Uganda",
		"Zambia", "Zimbabwe",
	}

	europe := []string{
		"Albania", "Andorra", "Austria", "Belarus", "Belgium", "Bosnia and Herzegovina",
		"Bulgaria", "Croatia", "Cyprus", "Czech Republic", "Denmark", "Estonia", "Finland",
		"France", "Germany", "Greece", "Hungary", "Iceland", "Ireland", "Italy", "Latvia",
		"Lithuania", "Luxembourg", "Malta", "Moldova", "Montenegro", "Netherlands", "North Macedonia",
		"Norway", "Poland", "Portugal", "Romania", "Russian Federation", "Serbia, FR(Serbia/Montenegro)",
		"Slovak Republic", "Slovenia", "Spain", "Sweden", "Switzerland", "Ukraine", "United Kingdom",
	}

	asia := []string{
		"Afghanistan", "Armenia", "Azerbaijan", "Bahrain", "Bangladesh", "Bhutan", "Brunei",
		"Cambodia", "China", "Georgia", "Hong Kong, China", "India", "Indonesia", "Iran, Islamic Rep.",
		"Iraq", "Israel", "Japan", "Jordan", "Kazakhstan", "Korea, Rep.", "Korea, Dem. Rep.",
		"Kuwait", "Kyrgyz Republic", "Lao PDR", "Lebanon", "Macao", "Malaysia", "Mongolia",
		"Myanmar", "Nepal", "Oman", "Pakistan", "Philippines", "Qatar", "Saudi Arabia",
		"Singapore", "Sri Lanka", "Syrian Arab Republic", "Tajikistan", "Thailand", "Turkey",
		"Turkmenistan", "United Arab Emirates", "Uzbekistan", "Vietnam", "Yemen",
	}

	americas := []string{
		"Argentina", "Bolivia", "Brazil", "Canada", "Chile", "Colombia", "Costa Rica",
		"Cuba", "Ecuador", "El Salvador", "Guatemala", "Honduras", "Jamaica", "Mexico",
		"Nicaragua", "Panama", "Paraguay", "Peru", "United States", "Uruguay", "Venezuela",
	}

	oceania := []string{"Australia", "Fiji", "New Zealand", "Papua New Guinea"}

	for _, c := range africa {
		index[c] = RegionAfrica
	}
	for _, c := range europe {
		index[c] = RegionEurope
	}
	for _, c := range asia {
		index[c] = RegionAsia
	}
	for _, c := range americas {
		index[c] = RegionAmericas
	}
	for _, c := range oceania {
		index[c] = RegionOceania
	}

	return index
}

// AssignRegion returns the region for a partner country. Aggregates and
// unrecognized names fall into the catch-all bucket rather than failing.
func AssignRegion(country string) string {
	if region, ok := regionByCountry[country]; ok {
		return region
	}
	return RegionOther
}
