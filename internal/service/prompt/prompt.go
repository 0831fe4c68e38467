package prompt

import (
	"fmt"

	"github.com/wordweaver-ai/wordweaver/internal/caption"
)

const (
	englishTemplate    = `Create a caption for the %s platform based on the following description: "%s". Make the caption engaging, concise, and include some relevant hashtags.`
	indonesianTemplate = `Buatkan caption untuk platform %s berdasarkan deskripsi berikut: "%s". Buat caption yang menarik, ringkas, dan sertakan beberapa hashtag yang relevan.`
)

// Build embeds platform and description into the template for language.
// Only the exact value "Indonesian" selects the Indonesian template; style
// does not take part in the prompt.
func Build(description, platform, language string) string {
	if language == caption.LanguageIndonesian {
		return fmt.Sprintf(indonesianTemplate, platform, description)
	}
	return fmt.Sprintf(englishTemplate, platform, description)
}
