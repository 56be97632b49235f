// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ctor

type Server struct {
	addr string
	port int
}

func NewServer(addr string, port int) *Server {
	if port == 0 {
		port := 80 // want "'port' hides a field"

		return &Server{addr: addr, port: port}
	}

	return &Server{addr: addr, port: port}
}

func newServer(addr string) Server {
	return Server{addr: addr}
}

func (s *Server) Listen(addr string) error { // want "'addr' hides a field"
	s.addr = addr

	return nil
}

type Client struct {
	server *Server
}

// NewServerClient is a package function, so instance fields are out of reach.
func NewServerClient(server *Server) *Client {
	return &Client{server: server}
}
