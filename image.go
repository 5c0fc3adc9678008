package wintoast

import (
	"strconv"
	"strings"

	"github.com/llehouerou/wintoast/dom"
)

// ImagePlacement is where an image is shown.
type ImagePlacement int

const (
	// PlacementAppLogoOverride replaces the app logo.
	PlacementAppLogoOverride ImagePlacement = iota
	// PlacementHero shows the image as a banner across the top of the toast.
	PlacementHero
)

func (p ImagePlacement) String() string {
	if p == PlacementHero {
		return "hero"
	}
	return "appLogoOverride"
}

// ParsePlacement parses "appLogoOverride" or "hero".
func ParsePlacement(s string) (ImagePlacement, error) {
	return parseEnum("image placement", s, []ImagePlacement{PlacementAppLogoOverride, PlacementHero})
}

// Crop is how an image is cropped.
type Crop int

const (
	// CropNone shows the image as a square.
	CropNone Crop = iota
	// CropCircle crops the image to a circle.
	CropCircle
)

func (c Crop) String() string {
	if c == CropCircle {
		return "circle"
	}
	return ""
}

// ParseCrop parses "circle". Both "" and "none" select CropNone.
func ParseCrop(s string) (Crop, error) {
	if strings.EqualFold(s, "none") {
		return CropNone, nil
	}
	return parseEnum("image crop", s, []Crop{CropNone, CropCircle})
}

// Image is an image in the binding or in a subgroup.
//
// The source can use http://, https://, ms-appx:///, ms-appdata:///local/ or,
// for desktop apps only, file:///.
type Image struct {
	src           string
	alt           string
	id            optional[int]
	addImageQuery bool
	placement     ImagePlacement
	crop          Crop
}

// NewImage creates an app logo image without cropping.
func NewImage(src string) Image {
	return Image{src: src}
}

// WithID sets the image position in the template.
func (i Image) WithID(id int) Image {
	i.id = some(id)
	return i
}

// WithAlt sets the description used by assistive technologies.
func (i Image) WithAlt(alt string) Image {
	i.alt = alt
	return i
}

// WithPlacement sets where the image is shown.
func (i Image) WithPlacement(p ImagePlacement) Image {
	i.placement = p
	return i
}

// WithHintCrop sets how the image is cropped.
func (i Image) WithHintCrop(c Crop) Image {
	i.crop = c
	return i
}

// AddImageQuery lets Windows append scale, contrast and language query
// strings to the image URI.
func (i Image) AddImageQuery() Image {
	i.addImageQuery = true
	return i
}

// Element renders the image. addImageQuery, alt, placement and hint-crop are
// always written.
func (i Image) Element(doc *dom.Document) (*dom.Element, error) {
	el := doc.CreateElement("image")
	el.SetAttribute("addImageQuery", strconv.FormatBool(i.addImageQuery))
	el.SetAttribute("alt", i.alt)
	if i.id.set {
		el.SetAttribute("id", strconv.Itoa(i.id.value))
	}
	el.SetAttribute("src", i.src)
	el.SetAttribute("placement", i.placement.String())
	el.SetAttribute("hint-crop", i.crop.String())
	return el, nil
}

func (Image) subGroupChild() {}

// AddImage adds an image to the binding.
func (t *Toast) AddImage(image Image) error {
	return t.append(t.binding, image)
}
