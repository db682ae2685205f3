// Package api provides the Codeforces API client used by the crawler.
//
// Base URL: https://codeforces.com/api
//
// Every response is a JSON envelope {status, result?, comment?}. Authorized
// methods additionally require apiKey, time and apiSig query parameters;
// see the auth package for the signing scheme.
package api
