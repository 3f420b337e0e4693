// Package baidu translates words with the Baidu Fanyi API.
package baidu

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/shengci/internal/translate"
)

const defaultEndpoint = "https://fanyi-api.baidu.com/api/trans/vip/translate"

type Client struct {
	httpClient *resty.Client
	endpoint   string
	appID      string
	appSecret  string
}

var _ translate.Translator = (*Client)(nil)

// NewClient returns a Client for the general translation endpoint. The
// credential has the form "appid:secret_key". Requests are signed with an MD5
// digest over appid, word, salt, and secret key, as the API requires.
func NewClient(credential string) (*Client, error) {
	if credential == "" {
		return nil, fmt.Errorf("baidu backend requires a credential in the appid:secret_key format")
	}

	appID, appSecret, _ := strings.Cut(credential, ":")
	return &Client{
		httpClient: resty.New(),
		endpoint:   defaultEndpoint,
		appID:      appID,
		appSecret:  appSecret,
	}, nil
}

type translateResponse struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_msg"`
	TransResult  []struct {
		Src string `json:"src"`
		Dst string `json:"dst"`
	} `json:"trans_result"`
}

func (client *Client) Translate(ctx context.Context, word string) (string, error) {
	salt := strconv.Itoa(rand.IntN(32769) + 32768)
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     word,
			"from":  "zh",
			"to":    "en",
			"appid": client.appID,
			"salt":  salt,
			"sign":  client.sign(word, salt),
		}).
		Get(client.endpoint)
	if err != nil {
		return "", fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var response translateResponse
	if err := json.Unmarshal(res.Body(), &response); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	if response.ErrorCode != "" && response.ErrorCode != "0" {
		return "", fmt.Errorf("api error %s: %s", response.ErrorCode, response.ErrorMessage)
	}
	if len(response.TransResult) == 0 {
		return "", fmt.Errorf("%w: empty translation result for %s", translate.ErrNotFound, word)
	}
	return response.TransResult[0].Dst, nil
}

// sign computes the request signature, MD5(appid + q + salt + secret_key) in
// lowercase hex.
func (client *Client) sign(word, salt string) string {
	digest := md5.Sum([]byte(client.appID + word + salt + client.appSecret))
	return hex.EncodeToString(digest[:])
}

func (client *Client) Name() string {
	return "Baidu Translate"
}
