package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/adapters/parser"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "commonjs require",
			src: `const a = require('lodash');
const { join } = require("path");
module.exports = function () { return require('./lib/helper') };`,
			want: []string{"lodash", "path", "./lib/helper"},
		},
		{
			name: "es module imports",
			src: `import fs from 'fs';
import * as ns from "./lib/ns.js";
import { a, b as c } from '@scope/pkg/sub';
import './side-effect';`,
			want: []string{"fs", "./lib/ns.js", "@scope/pkg/sub", "./side-effect"},
		},
		{
			name: "re-exports",
			src: `export { x } from 'chalk';
export * from "./all";
export const local = 1;`,
			want: []string{"chalk", "./all"},
		},
		{
			name: "dynamic import",
			src:  `async function load() { return import('./lazy'); }`,
			want: []string{"./lazy"},
		},
		{
			name: "non-literal and unrelated calls are ignored",
			src: `require(name);
foo.require('not-this');
requireAll('nope');
require();`,
			want: nil,
		},
		{
			name: "duplicates are kept in source order",
			src: `require('a');
require('b');
require('a');`,
			want: []string{"a", "b", "a"},
		},
		{
			name: "jsx",
			src: `import React from 'react';
export default function App() { return <div className="x">{require('./inline')}</div>; }`,
			want: []string{"react", "./inline"},
		},
		{
			name: "empty source",
			src:  ``,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parser.NewExtractor().Extract(context.Background(), "test.js", []byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
