package styles

import "visionstage-backend/internal/models"

// builtins are fixed at startup. The first entry is the fallback for any
// style id that no longer resolves.
var builtins = []models.StagingStyle{
	{
		ID:          "magic",
		Name:        "AI Magic Makeover",
		Description: `The "Everything" option. High-end professional staging, optimized lighting, and luxury decor for maximum buyer appeal.`,
		Prompt:      "Perform a total professional makeover on this room. Modernize the furniture, optimize the lighting, add high-end decor, and ensure the space looks exceptionally warm, inviting, and expensive for a luxury real estate listing. Preserve the existing architecture, flooring, and windows perfectly.",
		Icon:        "✨",
	},
	{
		ID:          "modern",
		Name:        "Modern Luxury",
		Description: "Clean lines, neutral palette, and high-end contemporary furniture.",
		Prompt:      "Virtually stage this room in a high-end Modern Luxury style. Add sleek contemporary furniture, minimalist decor, and elegant light fixtures. Keep the walls, windows, and floors exactly as they are.",
		Icon:        "🏢",
	},
	{
		ID:          "rustic",
		Name:        "Rustic Charm",
		Description: "Warm wood tones, cozy textiles, and a farmhouse aesthetic.",
		Prompt:      "Virtually stage this room in a warm Rustic Charm style. Add wooden furniture, soft cozy textiles, farmhouse-style decor, and warm lighting. Preserve the existing architecture perfectly.",
		Icon:        "🏡",
	},
	{
		ID:          "scandinavian",
		Name:        "Scandinavian",
		Description: "Bright, airy, functional, and simple with light wood accents.",
		Prompt:      "Virtually stage this room in a bright Scandinavian style. Use light-colored wood, functional furniture, and a clean white/grey palette. Maintain the room structure exactly.",
		Icon:        "❄️",
	},
	{
		ID:          "industrial",
		Name:        "Industrial Loft",
		Description: "Raw materials, dark metals, and vintage leather elements.",
		Prompt:      "Virtually stage this room in an Industrial Loft style. Add metal-framed furniture, vintage leather seating, and Edison bulb lighting. Keep the original floors and walls.",
		Icon:        "🏭",
	},
	{
		ID:          "minimalist",
		Name:        "Minimalist",
		Description: "Only the essentials. Space-maximizing and clutter-free.",
		Prompt:      "Virtually stage this room in a Minimalist style. Add only essential furniture with simple shapes and a monochrome palette. Ensure the room architecture remains unchanged.",
		Icon:        "⚪",
	},
	{
		ID:          "empty",
		Name:        "Empty Room",
		Description: "Remove all existing furniture to show the raw space.",
		Prompt:      "Virtually de-stage this room. Remove every single piece of furniture, rug, and wall decor to reveal a completely empty space. The architecture, flooring, and windows must remain identical.",
		Icon:        "🧹",
	},
}

// Builtins returns a copy of the built-in catalog in display order.
func Builtins() []models.StagingStyle {
	out := make([]models.StagingStyle, len(builtins))
	copy(out, builtins)
	return out
}
