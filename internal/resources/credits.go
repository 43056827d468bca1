package resources

import (
	"fmt"
	"os"

	"github.com/zamm-dev/paintboard/internal/models"
)

// DefaultCreditsPath is where the credits text is read from when no other
// path is configured
const DefaultCreditsPath = "credit.txt"

// LoadCredits reads the credits text shown by the info dialog. The content is
// returned unchanged.
func LoadCredits(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", models.NewBoardErrorWithCause(models.ErrTypeResource, fmt.Sprintf("failed to read credits file: %s", path), err)
	}
	return string(data), nil
}
