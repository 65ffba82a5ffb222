package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "Success",
			args: []string{"compute", "--ceiling", "200000", "--floor", "150000"},
			want: `{"status":"success","final":175000}`,
		},
		{
			name: "Close",
			args: []string{"compute", "--ceiling", "100000", "--floor", "110000"},
			want: `{"status":"close","suggested":105000}`,
		},
		{
			name: "Fail",
			args: []string{"compute", "--ceiling", "100000", "--floor", "110001"},
			want: `{"status":"fail"}`,
		},
		{
			name:    "Out of bounds",
			args:    []string{"compute", "--ceiling", "1", "--floor", "110001"},
			wantErr: true,
		},
		{
			name:    "Missing floor",
			args:    []string{"compute", "--ceiling", "100000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			var out bytes.Buffer

			cmd := newRootCommand()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.JSONEq(tt.want, out.String())
		})
	}
}
