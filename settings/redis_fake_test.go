package settings_test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gomodule/redigo/redis"
)

// fakeRedis answers the handful of commands the settings store sends.
type fakeRedis struct {
	mu   sync.Mutex
	keys map[string][]byte
	fail error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: map[string][]byte{}}
}

func (f *fakeRedis) pool() *redis.Pool {
	return &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return &fakeConn{srv: f}, nil
		},
	}
}

type fakeConn struct {
	srv *fakeRedis
}

func (c *fakeConn) Close() error { return nil }
func (c *fakeConn) Err() error   { return nil }
func (c *fakeConn) Flush() error { return nil }

func (c *fakeConn) Send(string, ...interface{}) error { return nil }

func (c *fakeConn) Receive() (interface{}, error) { return nil, nil }

func (c *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	f := c.srv
	f.mu.Lock()
	defer f.mu.Unlock()

	if cmd == "" {
		return nil, nil
	}
	if f.fail != nil {
		return nil, f.fail
	}

	switch strings.ToUpper(cmd) {
	case "GET":
		v, ok := f.keys[args[0].(string)]
		if !ok {
			return nil, nil
		}
		return append([]byte{}, v...), nil
	case "SET":
		key := args[0].(string)
		if len(args) > 2 && args[2] == "NX" {
			if _, ok := f.keys[key]; ok {
				return nil, nil
			}
		}
		f.keys[key] = append([]byte{}, args[1].([]byte)...)
		return "OK", nil
	case "DEL":
		delete(f.keys, args[0].(string))
		return int64(1), nil
	}

	return nil, fmt.Errorf("ERR unknown command '%s'", cmd)
}
