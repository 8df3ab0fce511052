package catalog

import "fmt"

// VariantMapping links a (size, medium, frame) configuration to the external
// commerce platform's sellable variant.
type VariantMapping struct {
	Size              string `json:"size"`
	Medium            string `json:"medium"`
	Frame             string `json:"frame"`
	ShopifyVariantID  string `json:"shopify_variant_id"`
	PrintfulVariantID int    `json:"printful_variant_id"`
	Price             int    `json:"price"`
}

// variantIndex is keyed "size-medium-frame".
var variantIndex = buildVariantIndex()

func buildVariantIndex() map[string]VariantMapping {
	sizes := []string{"8x10", "12x16", "16x20", "18x24", "24x36"}
	mediums := []string{"paper", "canvas", "acrylic"}
	frames := []string{"none", "black"}

	index := make(map[string]VariantMapping, len(sizes)*len(mediums)*len(frames))
	counter := 1
	for _, size := range sizes {
		for _, medium := range mediums {
			for _, frame := range frames {
				index[variantKey(size, medium, frame)] = VariantMapping{
					Size:              size,
					Medium:            medium,
					Frame:             frame,
					ShopifyVariantID:  fmt.Sprintf("gid://shopify/ProductVariant/%d", 10000+counter),
					PrintfulVariantID: 3000 + counter,
					Price:             Price(size, medium, frame, MatNone),
				}
				counter++
			}
		}
	}
	return index
}

func variantKey(size, medium, frame string) string {
	return size + "-" + medium + "-" + frame
}

// ResolveVariant maps a configuration to the commerce platform's variant id.
// Unmapped combinations return a clearly synthetic identifier and mapped=false
// so the flow stays usable in partially configured deployments; callers are
// expected to log the miss for operators.
func ResolveVariant(size, medium, frame string) (id string, mapped bool) {
	if v, ok := variantIndex[variantKey(size, medium, frame)]; ok {
		return v.ShopifyVariantID, true
	}
	return fmt.Sprintf("gid://shopify/ProductVariant/mock-%s", variantKey(size, medium, frame)), false
}

// VariantByKey exposes the full mapping for a configuration.
func VariantByKey(size, medium, frame string) (VariantMapping, bool) {
	v, ok := variantIndex[variantKey(size, medium, frame)]
	return v, ok
}
