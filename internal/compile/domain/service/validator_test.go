package service

import (
	"strings"
	"testing"
	
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

func validate(v *Validator, code string) *aggregate.CompileError {
	return v.Validate(&aggregate.Request{Code: code, Language: vo.Python})
}

func TestValidatorEmpty(t *testing.T) {
	v := NewValidator(viper.New())
	for _, code := range []string{"", " ", "\n\t  \r\n"} {
		err := validate(v, code)
		require.NotNil(t, err)
		assert.Equal(t, aggregate.KindInvalidInput, err.Kind)
		assert.Equal(t, "Code cannot be empty", err.Message)
	}
}

func TestValidatorLength(t *testing.T) {
	v := NewValidator(viper.New())
	
	assert.Nil(t, validate(v, strings.Repeat("a", 50000)))
	err := validate(v, strings.Repeat("a", 50001))
	require.NotNil(t, err)
	assert.Equal(t, "Code is too long (maximum 50,000 characters)", err.Message)
	
	// characters, not bytes
	assert.Nil(t, validate(v, strings.Repeat("é", 50000)))
}

func TestValidatorConfiguredLength(t *testing.T) {
	conf := viper.New()
	conf.Set("app.compiler.max_code_length", 1200)
	v := NewValidator(conf)
	
	err := validate(v, strings.Repeat("x", 1201))
	require.NotNil(t, err)
	assert.Equal(t, "Code is too long (maximum 1,200 characters)", err.Message)
}

func TestValidatorDangerousPatterns(t *testing.T) {
	v := NewValidator(viper.New())
	for _, code := range []string{
		"import os",
		"IMPORT subprocess",
		"from os import path",
		"from subprocess import run",
		"const cp = require('child_process')",
		`require("fs")`,
		"exec('x')",
		"eval(input)",
		"system(\"ls\")",
		"__import__('os')",
		"file('a.txt')",
		"open('a.txt')",
		"cat ../secret",
		`..\windows`,
		"rm -rf /",
		"del x",
		"int main(){ printf(\"hi\"); } // eval(",
		// substrings count, not just whole words
		"model = 1",
		"retrieval(x)",
		"dofile('x')",
		"reopen(f)",
		"from os.path import join",
		"FROM subprocess import *",
	} {
		err := validate(v, code)
		require.NotNil(t, err, code)
		assert.Equal(t, "Code contains potentially dangerous operations", err.Message, code)
	}
}

func TestValidatorAcceptsOrdinaryCode(t *testing.T) {
	v := NewValidator(viper.New())
	for _, code := range []string{
		`print("hello")`,
		"total = 1\nprint('ok')",
		"import osmosis",
		"import math",
		"console.log(1.5)",
		"delete obj.key",
		"evaluate(x)",
	} {
		assert.Nil(t, validate(v, code), code)
	}
	for _, l := range vo.Languages {
		assert.Nil(t, validate(v, l.Template()), l)
	}
}
