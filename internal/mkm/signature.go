package mkm

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // OAuth1 mandates HMAC-SHA1
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	oauthVersion         = "1.0"
	oauthSignatureMethod = "HMAC-SHA1"
)

type oauthNonce struct {
	nonce     string
	timestamp int64
}

// authorizationHeader builds the OAuth1 Authorization header for a request.
// The realm and the signature base URL are the request URL without its
// query; query parameters are folded into the signed parameter string.
func authorizationHeader(method string, u *url.URL, creds Credentials, n oauthNonce) string {
	realm := baseURL(u)

	oauthParams := [][2]string{
		{"oauth_consumer_key", creds.AppToken},
		{"oauth_token", creds.AccessToken},
		{"oauth_nonce", n.nonce},
		{"oauth_timestamp", strconv.FormatInt(n.timestamp, 10)},
		{"oauth_signature_method", oauthSignatureMethod},
		{"oauth_version", oauthVersion},
	}

	signature := sign(method, realm, oauthParams, u.Query(), creds)

	var b strings.Builder
	fmt.Fprintf(&b, `OAuth realm="%s"`, realm)
	for _, p := range oauthParams {
		fmt.Fprintf(&b, `, %s="%s"`, p[0], percentEncode(p[1]))
	}
	fmt.Fprintf(&b, `, oauth_signature="%s"`, percentEncode(signature))
	return b.String()
}

// sign computes the base64 HMAC-SHA1 signature over the OAuth1 base string.
func sign(
	method, realm string,
	oauthParams [][2]string,
	query url.Values,
	creds Credentials,
) string {
	pairs := make([][2]string, 0, len(oauthParams)+len(query))
	for _, p := range oauthParams {
		pairs = append(pairs, [2]string{percentEncode(p[0]), percentEncode(p[1])})
	}
	for k, vs := range query {
		for _, v := range vs {
			pairs = append(pairs, [2]string{percentEncode(k), percentEncode(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] == pairs[j][0] {
			return pairs[i][1] < pairs[j][1]
		}
		return pairs[i][0] < pairs[j][0]
	})

	encoded := make([]string, len(pairs))
	for i, p := range pairs {
		encoded[i] = p[0] + "=" + p[1]
	}

	base := strings.ToUpper(method) + "&" +
		percentEncode(realm) + "&" +
		percentEncode(strings.Join(encoded, "&"))
	key := percentEncode(creds.AppSecret) + "&" + percentEncode(creds.AccessTokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// baseURL returns scheme://host/path of u with no query or fragment.
func baseURL(u *url.URL) string {
	b := url.URL{
		Scheme:  strings.ToLower(u.Scheme),
		Host:    strings.ToLower(u.Host),
		Path:    u.Path,
		RawPath: u.RawPath,
	}
	return b.String()
}

// percentEncode applies RFC 3986 encoding: only unreserved characters are
// left as-is.
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
