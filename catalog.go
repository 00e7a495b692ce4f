package fakesmith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// GeneratorFunc produces one synthetic value for a type tag. Generators do
// not return errors: missing or invalid options fall back to defaults, and
// an unrecognized tag is a dispatch-level concern, not a generator one.
type GeneratorFunc func(o GenOptions) any

// AllTags enumerates the closed type-tag vocabulary, grouped by category.
// newCatalog must register a generator for every entry; NewEngine verifies
// this at construction.
var AllTags = []string{
	// person
	"firstName", "lastName", "fullName", "gender", "prefix", "suffix",
	"jobTitle", "jobType", "jobArea",
	// internet
	"email", "userName", "password", "url", "ipAddress", "domainName",
	"protocol", "httpMethod",
	// location
	"address", "city", "country", "countryCode", "zipCode", "state",
	"stateAbbr", "latitude", "longitude", "timeZone",
	// date/time
	"date", "weekday", "month", "timestamp",
	// commerce
	"product", "productName", "price", "department", "productMaterial",
	"productDescription",
	// company
	"companyName", "catchPhrase", "bs", "bsAdjective", "bsBuzz", "bsNoun",
	// finance
	"accountNumber", "accountName", "amount", "currencyCode", "currencyName",
	"currencySymbol", "bitcoinAddress",
	// vehicle
	"vehicle", "manufacturer", "model", "type", "fuel", "vin",
	// system
	"fileName", "mimeType", "fileExt", "directoryPath", "semver",
	// science
	"chemicalElement", "unit", "scientificUnit",
	// music
	"genre", "songName", "artist",
	// primitive
	"number", "float", "word", "words", "sentence", "paragraph", "text",
	"uuid", "boolean", "color",
}

// recentWindow bounds the default "recent" date mode and timestamp values.
const recentWindow = 24 * time.Hour

// Word lists for tags the faker library has no category for.
var (
	protocols = []string{"http", "https"}

	accountTypes = []string{
		"Checking", "Savings", "Money Market", "Investment", "Home Loan",
		"Credit Card", "Auto Loan", "Personal Loan",
	}

	currencySymbols = []string{"$", "€", "£", "¥", "₹", "₩", "₽", "R$", "Fr", "kr"}

	chemicalElements = []string{
		"Hydrogen", "Helium", "Lithium", "Carbon", "Nitrogen", "Oxygen",
		"Sodium", "Magnesium", "Aluminium", "Silicon", "Phosphorus",
		"Sulfur", "Chlorine", "Potassium", "Calcium", "Titanium", "Iron",
		"Nickel", "Copper", "Zinc", "Silver", "Tin", "Platinum", "Gold",
		"Mercury", "Lead", "Uranium",
	}

	baseUnits = []string{
		"meter", "kilogram", "second", "ampere", "kelvin", "mole", "candela",
	}

	derivedUnits = []string{
		"hertz (Hz)", "newton (N)", "pascal (Pa)", "joule (J)", "watt (W)",
		"coulomb (C)", "volt (V)", "farad (F)", "ohm (Ω)", "tesla (T)",
		"lumen (lm)", "becquerel (Bq)",
	}
)

// vinChars excludes I, O, and Q per the VIN standard.
const vinChars = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

// newCatalog builds the tag → generator registration table over a Source.
// Each generator closes over the source's faker; none of them mutate shared
// state beyond the source itself.
func newCatalog(src *Source) map[string]GeneratorFunc {
	f := src.faker

	pick := func(list []string) string {
		return list[f.Number(0, len(list)-1)]
	}

	return map[string]GeneratorFunc{
		// Person
		"firstName": func(GenOptions) any { return f.FirstName() },
		"lastName":  func(GenOptions) any { return f.LastName() },
		"fullName":  func(GenOptions) any { return f.Name() },
		"gender":    func(GenOptions) any { return f.Gender() },
		"prefix":    func(GenOptions) any { return f.NamePrefix() },
		"suffix":    func(GenOptions) any { return f.NameSuffix() },
		"jobTitle":  func(GenOptions) any { return f.JobTitle() },
		"jobType":   func(GenOptions) any { return f.JobDescriptor() },
		"jobArea":   func(GenOptions) any { return f.JobLevel() },

		// Internet
		"email":    func(GenOptions) any { return f.Email() },
		"userName": func(GenOptions) any { return f.Username() },
		"password": func(o GenOptions) any {
			length := o.Int("length", 12)
			if length < 4 || length > 128 {
				length = 12
			}
			return f.Password(true, true, true, true, false, length)
		},
		"url":        func(GenOptions) any { return f.URL() },
		"ipAddress":  func(GenOptions) any { return f.IPv4Address() },
		"domainName": func(GenOptions) any { return f.DomainName() },
		"protocol":   func(GenOptions) any { return pick(protocols) },
		"httpMethod": func(GenOptions) any { return f.HTTPMethod() },

		// Location. The flat address here is a single formatted string; the
		// person/company paths build a nested record instead.
		"address": func(GenOptions) any {
			return fmt.Sprintf("%s, %s, %s %s", f.Street(), f.City(), f.StateAbr(), f.Zip())
		},
		"city":        func(GenOptions) any { return f.City() },
		"country":     func(GenOptions) any { return f.Country() },
		"countryCode": func(GenOptions) any { return f.CountryAbr() },
		"zipCode":     func(GenOptions) any { return f.Zip() },
		"state":       func(GenOptions) any { return f.State() },
		"stateAbbr":   func(GenOptions) any { return f.StateAbr() },
		"latitude":    func(GenOptions) any { return f.Latitude() },
		"longitude":   func(GenOptions) any { return f.Longitude() },
		"timeZone":    func(GenOptions) any { return f.TimeZone() },

		// Date/time. All ISO-8601 strings except timestamp (epoch millis).
		"date": func(o GenOptions) any {
			now := time.Now()
			switch {
			case o.Truthy("past"):
				return f.DateRange(now.AddDate(-1, 0, 0), now.Add(-time.Second)).Format(time.RFC3339)
			case o.Truthy("future"):
				return f.DateRange(now.Add(time.Second), now.AddDate(1, 0, 0)).Format(time.RFC3339)
			default:
				return f.DateRange(now.Add(-recentWindow), now.Add(-time.Second)).Format(time.RFC3339)
			}
		},
		"weekday": func(GenOptions) any { return f.WeekDay() },
		"month":   func(GenOptions) any { return f.MonthString() },
		"timestamp": func(GenOptions) any {
			now := time.Now()
			return f.DateRange(now.Add(-recentWindow), now).UnixMilli()
		},

		// Commerce. price stays a 2-decimal numeric string: the original
		// interface exposed it that way and callers parse it as text.
		"product":     func(GenOptions) any { return f.ProductName() },
		"productName": func(GenOptions) any { return f.ProductName() },
		"price": func(o GenOptions) any {
			lo, hi := o.floatRange(1, 1000)
			return strconv.FormatFloat(f.Price(lo, hi), 'f', 2, 64)
		},
		"department":         func(GenOptions) any { return f.ProductCategory() },
		"productMaterial":    func(GenOptions) any { return f.ProductMaterial() },
		"productDescription": func(GenOptions) any { return f.ProductDescription() },

		// Company
		"companyName": func(GenOptions) any { return f.Company() },
		"catchPhrase": func(GenOptions) any { return f.Slogan() },
		"bs":          func(GenOptions) any { return f.BS() },
		"bsAdjective": func(GenOptions) any { return f.Adjective() },
		"bsBuzz":      func(GenOptions) any { return f.BuzzWord() },
		"bsNoun":      func(GenOptions) any { return f.Noun() },

		// Finance
		"accountNumber": func(GenOptions) any { return f.AchAccount() },
		"accountName":   func(GenOptions) any { return pick(accountTypes) + " Account" },
		"amount": func(o GenOptions) any {
			lo, hi := o.floatRange(0, 1000)
			return math.Round(f.Float64Range(lo, hi)*100) / 100
		},
		"currencyCode":   func(GenOptions) any { return f.Currency().Short },
		"currencyName":   func(GenOptions) any { return f.Currency().Long },
		"currencySymbol": func(GenOptions) any { return pick(currencySymbols) },
		"bitcoinAddress": func(GenOptions) any { return f.BitcoinAddress() },

		// Vehicle
		"vehicle": func(GenOptions) any {
			car := f.Car()
			return fmt.Sprintf("%s %s", car.Brand, car.Model)
		},
		"manufacturer": func(GenOptions) any { return f.CarMaker() },
		"model":        func(GenOptions) any { return f.CarModel() },
		"type":         func(GenOptions) any { return f.CarType() },
		"fuel":         func(GenOptions) any { return f.CarFuelType() },
		"vin": func(GenOptions) any {
			b := make([]byte, 17)
			for i := range b {
				b[i] = vinChars[f.Number(0, len(vinChars)-1)]
			}
			return string(b)
		},

		// System
		"fileName":      func(GenOptions) any { return f.Word() + "." + f.FileExtension() },
		"mimeType":      func(GenOptions) any { return f.FileMimeType() },
		"fileExt":       func(GenOptions) any { return f.FileExtension() },
		"directoryPath": func(GenOptions) any { return "/" + strings.Join([]string{f.Word(), f.Word(), f.Word()}, "/") },
		"semver":        func(GenOptions) any { return f.AppVersion() },

		// Science
		"chemicalElement": func(GenOptions) any { return pick(chemicalElements) },
		"unit":            func(GenOptions) any { return pick(baseUnits) },
		"scientificUnit":  func(GenOptions) any { return pick(derivedUnits) },

		// Music
		"genre":    func(GenOptions) any { return f.SongGenre() },
		"songName": func(GenOptions) any { return f.SongName() },
		"artist":   func(GenOptions) any { return f.SongArtist() },

		// Primitives
		"number": func(o GenOptions) any {
			lo, hi := o.intRange(0, 1000)
			return f.Number(lo, hi)
		},
		"float": func(o GenOptions) any {
			lo, hi := o.floatRange(0, 1000)
			precision := o.Int("precision", 2)
			if precision < 0 || precision > 10 {
				precision = 2
			}
			shift := math.Pow10(precision)
			return math.Round(f.Float64Range(lo, hi)*shift) / shift
		},
		"word": func(GenOptions) any { return f.Word() },
		"words": func(GenOptions) any {
			return strings.Join([]string{f.Word(), f.Word(), f.Word()}, " ")
		},
		"sentence":  func(GenOptions) any { return f.Sentence(8) },
		"paragraph": func(GenOptions) any { return f.Paragraph(1, 4, 10, " ") },
		"text":      func(GenOptions) any { return f.Paragraph(2, 3, 12, "\n\n") },
		"uuid":      func(GenOptions) any { return f.UUID() },
		"boolean":   func(GenOptions) any { return f.Bool() },
		"color": func(o GenOptions) any {
			if o.String("format", "hex") == "rgb" {
				c := f.RGBColor()
				return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
			}
			return f.HexColor()
		},
	}
}
