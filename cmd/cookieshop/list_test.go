package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type listJSONResult struct {
	Section string `json:"section"`
	Theme   string `json:"theme"`
	Query   string `json:"query"`
	Total   int    `json:"total"`
	Count   int    `json:"count"`
	Items   []struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Price    string `json:"price"`
		Category string `json:"category"`
	} `json:"items"`
}

func decodeList(t *testing.T, stdout string) listJSONResult {
	t.Helper()

	var result listJSONResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	return result
}

func TestListCommand_TableOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "Chocolate Chip")
	require.Contains(t, stdout, "2.5 KD")
	require.Contains(t, stdout, "Red Velvet")
}

func TestListCommand_JSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	result := decodeList(t, stdout)
	require.Equal(t, "cookies", result.Section)
	require.Equal(t, "light", result.Theme)
	require.Equal(t, 6, result.Total)
	require.Len(t, result.Items, 6)
	require.Equal(t, 1, result.Items[0].ID)
	require.Equal(t, "3", result.Items[0].Price)
}

func TestListCommand_DeleteKeepsOrder(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--json", "--delete", "1", "--delete", "4")
	require.NoError(t, err)

	result := decodeList(t, stdout)
	ids := make([]int, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.ID)
	}
	require.Equal(t, []int{2, 3, 5, 6}, ids)
}

func TestListCommand_DeleteIsIdempotent(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--json", "--delete", "1,1,99")
	require.NoError(t, err)

	result := decodeList(t, stdout)
	require.Equal(t, 5, result.Total)
}

func TestListCommand_DeleteReportsMissingIDs(t *testing.T) {
	_, stderr, err := executeCommand(t, "list", "--delete", "99")
	require.NoError(t, err)
	require.Contains(t, stderr, "no item with id 99")
}

func TestListCommand_DeleteRejectsNonNumericIDs(t *testing.T) {
	_, _, err := executeCommand(t, "list", "--delete", "abc")
	require.Error(t, err)
	require.Contains(t, err.Error(), `removing item "abc"`)
}

func TestListCommand_Search(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--json", "--search", "CHOC")
	require.NoError(t, err)

	result := decodeList(t, stdout)
	require.Equal(t, "CHOC", result.Query)
	require.Equal(t, 6, result.Total)
	require.Equal(t, 2, result.Count)
}

func TestListCommand_SearchWithoutMatches(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--search", "brownie")
	require.NoError(t, err)
	require.Contains(t, stdout, `No cookies match "brownie".`)
}

func TestListCommand_EmptyCatalog(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--delete", "1,2,3,4,5,6")
	require.NoError(t, err)
	require.Contains(t, stdout, "No cookies left.")
}

func TestListCommand_CustomSeedAndCategory(t *testing.T) {
	seedPath := writeFile(t, "seed.yaml", smallSeed)

	stdout, _, err := executeCommand(t, "list", "--json", "--seed", seedPath, "--category", "products", "--theme", "dark")
	require.NoError(t, err)

	result := decodeList(t, stdout)
	require.Equal(t, "products", result.Section)
	require.Equal(t, "dark", result.Theme)
	require.Len(t, result.Items, 2)
	require.Equal(t, "products", result.Items[0].Category)
	require.Equal(t, "8.5", result.Items[1].Price)
}

func TestListCommand_ConfigFile(t *testing.T) {
	seedPath := writeFile(t, "seed.yaml", smallSeed)
	configPath := writeFile(t, "config.yaml", "category: products\ntheme: dark\nseed: "+seedPath+"\n")

	stdout, _, err := executeCommand(t, "list", "--json", "--config", configPath)
	require.NoError(t, err)

	result := decodeList(t, stdout)
	require.Equal(t, "products", result.Section)
	require.Equal(t, 2, result.Total)
}
