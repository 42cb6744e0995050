package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/jarijaas/go-igapi/pkg/common"
)

// GenerateJazoest derives the checksum token sent with login payloads:
// "2" followed by the decimal sum of the seed's code points. Deterministic.
func GenerateJazoest(seed string) string {
	sum := 0
	for _, r := range seed {
		sum += int(r)
	}
	return "2" + strconv.Itoa(sum)
}

// GenerateBreadcrumb builds the typing-telemetry token attached to text
// submissions: an HMAC-SHA256 line over "<size> <elapsed_ms> <event_count>
// <epoch_ms>" followed by the plain encoding of the same string, both
// base64, both newline-terminated. Output is random by design; only the
// structure is stable. Pass rnd to pin the randomness in tests.
func GenerateBreadcrumb(size int, rnd *rand.Rand) string {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dt := time.Now().UnixNano() / int64(time.Millisecond)
	elapsed := rnd.Intn(1001) + 500 + size*(rnd.Intn(1001)+500)

	// approximates typing speed
	eventCount := size / (rnd.Intn(3) + 3)
	if eventCount < 1 {
		eventCount = 1
	}

	data := fmt.Sprintf("%d %d %d %d", size, elapsed, eventCount, dt)

	mac := hmac.New(sha256.New, []byte(common.BreadcrumbKey))
	mac.Write([]byte(data))

	return fmt.Sprintf("%s\n%s\n",
		base64.StdEncoding.EncodeToString(mac.Sum(nil)),
		base64.StdEncoding.EncodeToString([]byte(data)))
}
