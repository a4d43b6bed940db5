// Package prompt builds the instruction text sent with each photo.
package prompt

import (
	"fmt"
	"strings"

	"visionstage-backend/internal/models"
)

// RefinePrefix starts the override text for an iterate-on-this-image batch.
const RefinePrefix = "Refine this staged room by adjusting: "

// Compose returns the instruction for one photo: the room type, then either
// the override text (verbatim) or the effective style's prompt, then the
// consistency clause naming the master style and the listing address.
// An empty override selects the effective style's prompt.
func Compose(roomLabel, address string, master, effective models.StagingStyle, override string) string {
	body := effective.Prompt
	if override != "" {
		body = override
	}
	return fmt.Sprintf("Room type: %s. %s. %s", roomLabel, body, Consistency(master, address))
}

// Consistency is the clause appended to every prompt in a listing.
func Consistency(master models.StagingStyle, address string) string {
	return fmt.Sprintf(
		"Maintain strict visual consistency with the '%s' aesthetic used throughout the rest of this property listing at %s. Ensure lighting and materials match the established theme.",
		master.Name, address,
	)
}

// UseOverride reports whether a batch's custom text replaces style prompts:
// custom mode must be on and the text must not be blank.
func UseOverride(customMode bool, text string) bool {
	return customMode && strings.TrimSpace(text) != ""
}

// Refinement builds override text for refining an already staged image.
func Refinement(adjustments string) string {
	return RefinePrefix + adjustments
}
