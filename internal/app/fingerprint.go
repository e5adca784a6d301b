package service

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// datasetNamespace scopes dataset fingerprints.
var datasetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://ayda.run/datasets")) //nolint:gochecknoglobals // fixed namespace

// Fingerprint derives a stable UUID from the editions and their records,
// so identical inputs produce identical output.
func Fingerprint(years []int, raw map[int][]model.YearlyResultRecord) string {
	var buf []byte
	for _, y := range years {
		buf = strconv.AppendInt(buf, int64(y), 10)
		buf = append(buf, ':')
		// Records only hold plain fields; encoding cannot fail.
		b, _ := json.Marshal(raw[y])
		buf = append(buf, b...)
		buf = append(buf, '\n')
	}
	return uuid.NewSHA1(datasetNamespace, buf).String()
}
