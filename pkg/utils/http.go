package utils

import (
	"fmt"
	"io"
	"net/http"
)

// MakeRequest faz um GET simples e retorna o corpo da resposta. Usado para
// baixar o arquivo do relatório exportado.
func MakeRequest(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
