package studio

import (
	"fmt"
	"strings"
)

// annotationPrompt asks the vision model for a structured JSON description
// of one reference image. The schema must stay in sync with Annotation.
const annotationPrompt = `You are a fashion archivist cataloguing reference imagery.
Describe the garment or artwork in this image as a single JSON object with
exactly these fields:

{
  "caption": "one-sentence description",
  "tags": ["3 to 12 short lowercase keywords"],
  "silhouette": "overall silhouette or shape",
  "material": "dominant material or fabric",
  "pattern": "surface pattern, or 'solid' if none",
  "details": ["notable construction or styling details"],
  "mood": "overall mood in a few words",
  "colors": ["dominant colors, most prominent first"]
}

Respond with the JSON object only. No markdown, no explanation.`

// designPrompt builds the system instruction for a design generation batch
func designPrompt(brief string) string {
	var b strings.Builder
	b.WriteString(`You are a senior fashion designer creating an original garment design.

Composition requirements:
- One single garment, shown in full on a clean neutral studio background
- Front view, evenly lit, catalogue style
- The garment is the only subject; no model, no mannequin head, no props

Use the attached reference images as visual DNA: draw silhouette, material,
color and detailing cues from them without copying any reference outright.

Do not include text, logos, watermarks, collages or split frames.

Each design in this series must differ clearly from the others in cut,
fabric treatment or styling while staying true to the brief.

Design brief: `)
	b.WriteString(brief)
	return b.String()
}

// textilePrompt frames the primary reference as original artwork to be
// applied as a surface pattern to a named garment category
func textilePrompt(brief string, opts TextileOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a senior fashion designer working with an original textile artwork.

The first attached image is "%s", an original artwork by %s. Treat it with
respect: apply it as a surface pattern without distorting, cropping away or
recoloring its essential motifs. The artwork must remain recognizably the
artist's work on the finished garment.

Garment category: %s`, opts.TextileTitle, opts.ArtistName, opts.Category)
	if opts.CategoryDescription != "" {
		fmt.Fprintf(&b, " (%s)", opts.CategoryDescription)
	}
	b.WriteString(`

Composition requirements:
- One single garment of the named category, shown in full on a clean neutral
  studio background
- The artwork flows naturally across seams and panels at a believable scale
- No model, no text, no watermarks, no collages

Design brief: `)
	b.WriteString(brief)
	return b.String()
}

// editPrompt asks the model to apply one change and preserve everything else
func editPrompt(instruction string) string {
	return fmt.Sprintf(`Edit the attached image. Apply only this change: %s

Preserve everything else exactly: background, composition, framing, lighting
and all parts of the subject the instruction does not mention.`, instruction)
}

// referencePrompt composes a derived-view generation: the reference supplies
// visual DNA, the caller's prompt supplies the composition
func referencePrompt(composition string) string {
	return fmt.Sprintf(`Use the attached image as the visual reference: keep its subject, materials,
colors and distinguishing details intact.

Compose a new view as follows: %s

Do not include text, logos or watermarks.`, composition)
}

// inspirationPrompt asks for a free-text creative brief from references
const inspirationPrompt = `You are a creative director preparing a design brief.
Study the attached reference images and write a short creative brief with:

1. Concept: the unifying idea in two or three sentences
2. Keywords: 8 to 12 evocative words or short phrases
3. Design directions: three concrete directions a designer could explore,
   each with a sentence on silhouette, material and mood

Write plain prose. Do not mention that you are describing images.`
