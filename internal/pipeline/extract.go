package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/korean"
)

const (
	EncodingUTF8  = "utf-8"
	EncodingEUCKR = "euc-kr"
)

// OpenAndDecode reads a sales CSV into a dataframe. Legacy exports arrive
// in EUC-KR, so those are decoded to UTF-8 before parsing.
func OpenAndDecode(path, encoding string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file %s: %v", path, err)
	}

	defer file.Close()

	var reader io.Reader = file
	if strings.EqualFold(encoding, EncodingEUCKR) {
		reader = korean.EUCKR.NewDecoder().Reader(file)
	}

	df := dataframe.ReadCSV(reader, dataframe.WithLazyQuotes(true))
	// If dataframe is empty return
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe is empty")
	}

	return df, df.Error()
}
