// Package redis provides Redis connectivity used by the optional Redis
// session store: retrying connect and a healthcheck probe closure.
package redis
