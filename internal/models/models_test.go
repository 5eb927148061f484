package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResult_JSON(t *testing.T) {
	b, err := json.Marshal(UploadResult{
		Account: 1,
		File:    "a.txt",
		Slug:    "proj1",
		URL:     "https://gitlab.com/g/proj1",
	})
	require.NoError(t, err)

	assert.Equal(t, `{"account":1,"file":"a.txt","slug":"proj1","url":"https://gitlab.com/g/proj1"}`, string(b))
}

func TestUploadRequest_Accounts(t *testing.T) {
	req := &UploadRequest{Tokens: []string{"t1", "t2"}, GroupIDs: []string{"g1", "g2"}}

	assert.Equal(t, []Account{
		{Token: "t1", GroupID: "g1", Index: 1},
		{Token: "t2", GroupID: "g2", Index: 2},
	}, req.Accounts())
}
