package wintoast

// BindingAddImageQuery lets Windows append scale, contrast and language query
// strings to the image URIs of the binding, e.g.
// "www.website.com/images/hello.png?ms-scale=100&ms-contrast=standard&ms-lang=en-us".
func (t *Toast) BindingAddImageQuery() {
	t.binding.SetAttribute("addImageQuery", "true")
}

// SetBindingBaseURI sets the base URI combined with relative image sources.
func (t *Toast) SetBindingBaseURI(baseURI string) {
	t.binding.SetAttribute("baseUri", baseURI)
}

// SetBindingFallback sets the template used when ToastGeneric is not available.
func (t *Toast) SetBindingFallback(fallback string) {
	t.binding.SetAttribute("fallback", fallback)
}

// VisualAddImageQuery is BindingAddImageQuery for the whole visual element.
func (t *Toast) VisualAddImageQuery() {
	t.visual.SetAttribute("addImageQuery", "true")
}

// SetVisualBaseURI sets the base URI for the whole visual element.
func (t *Toast) SetVisualBaseURI(baseURI string) {
	t.visual.SetAttribute("baseUri", baseURI)
}
