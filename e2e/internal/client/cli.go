// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package client provides a wrapper around the hpx binary for end to end tests.
package client

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega/gexec"
)

// CLI wraps execs of the hpx binary.
type CLI struct {
	path string
}

// DeployRequest contains the parameters for calling hpx deploy.
type DeployRequest struct {
	StackName string
	Version   string
	Custom    string
	Execute   bool
	Profile   string
	Region    string
}

// NewCLI returns a wrapper around the hpx binary.
// The binary path is read from HPX_E2E_BIN, defaulting to /bin/hpx so that
// the suite can run inside the test container.
func NewCLI() (*CLI, error) {
	cliPath := os.Getenv("HPX_E2E_BIN")
	if cliPath == "" {
		cliPath = filepath.Join("/", "bin", "hpx")
	}
	if _, err := os.Stat(cliPath); err != nil {
		return nil, err
	}
	return &CLI{
		path: cliPath,
	}, nil
}

/*
Help runs:
hpx --help
*/
func (cli *CLI) Help() (string, error) {
	return cli.exec(exec.Command(cli.path, "--help"))
}

/*
Version runs:
hpx --version
*/
func (cli *CLI) Version() (string, error) {
	return cli.exec(exec.Command(cli.path, "--version"))
}

/*
Deploy runs:
hpx deploy $stack-name

	--version $v
	--custom $uri
	--execute (optionally)
	--profile $p
	--region $r

Extra "KEY=VALUE" entries in env are appended to the command's environment.
*/
func (cli *CLI) Deploy(opts *DeployRequest, env ...string) (string, error) {
	args := []string{"deploy"}
	if opts.StackName != "" {
		args = append(args, opts.StackName)
	}
	if opts.Version != "" {
		args = append(args, "--version", opts.Version)
	}
	if opts.Custom != "" {
		args = append(args, "--custom", opts.Custom)
	}
	if opts.Execute {
		args = append(args, "--execute")
	}
	if opts.Profile != "" {
		args = append(args, "--profile", opts.Profile)
	}
	if opts.Region != "" {
		args = append(args, "--region", opts.Region)
	}
	command := exec.Command(cli.path, args...)
	command.Env = append(os.Environ(), env...)
	return cli.exec(command)
}

/*
Delete runs:
hpx delete $stack-name --yes
*/
func (cli *CLI) Delete(stackName string, env ...string) (string, error) {
	command := exec.Command(cli.path, "delete", stackName, "--yes")
	command.Env = append(os.Environ(), env...)
	return cli.exec(command)
}

/*
Completion runs:
hpx completion $shell
*/
func (cli *CLI) Completion(shell string) (string, error) {
	return cli.exec(exec.Command(cli.path, "completion", shell))
}

func (cli *CLI) exec(command *exec.Cmd) (string, error) {
	// Turn off colors so assertions match plain text.
	if command.Env == nil {
		command.Env = os.Environ()
	}
	command.Env = append(command.Env, "COLOR=false")
	sess, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
	if err != nil {
		return "", err
	}

	<-sess.Exited
	stdout := string(sess.Out.Contents())
	if exitCode := sess.ExitCode(); exitCode != 0 {
		return stdout, fmt.Errorf("exit code %d: %s", exitCode, sess.Err.Contents())
	}
	return stdout, nil
}
