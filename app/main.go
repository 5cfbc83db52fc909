/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rfbergeron/arithmetic-coding"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appHeader = "arcode 1.0 - a file-level arithmetic coder"

var (
	log       = logrus.New()
	traceSpec string
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:           "arcode",
		Short:         appHeader,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&traceSpec, "debug", "@", "", "trace flag characters to enable ('@' enables all)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress events")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <infile> <outfile>",
		Short: "compress infile into outfile",
		Args:  requireTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1])
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <infile> <outfile>",
		Short: "decompress infile into outfile",
		Args:  requireTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], args[1])
		},
	}
}

func requireTwoArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s takes exactly <infile> <outfile>", arcode.ErrUsage, cmd.Name())
	}

	return nil
}

func setupLogging() *debugFlags {
	df := newDebugFlags(traceSpec)

	if traceSpec != "" || verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return df
}

func runEncode(inPath, outPath string) error {
	df := setupLogging()
	df.trace(log, 'c', "encoding "+inPath, logrus.Fields{"out": outPath})

	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %v", arcode.ErrOpenFailed, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %v", arcode.ErrOpenFailed, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	listeners := []arcode.Listener{}
	if verbose {
		listeners = append(listeners, newInfoPrinter(log))
	}

	if err := arcode.Encode(src, w, listeners...); err != nil {
		return err
	}

	return w.Flush()
}

func runDecode(inPath, outPath string) error {
	df := setupLogging()
	df.trace(log, 'd', "decoding "+inPath, logrus.Fields{"out": outPath})

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: %v", arcode.ErrOpenFailed, err)
	}
	defer in.Close()

	r := bufio.NewReader(in)

	listeners := []arcode.Listener{}
	if verbose {
		listeners = append(listeners, newInfoPrinter(log))
	}

	out, err := arcode.Decode(io.Reader(r), listeners...)
	if err != nil {
		return err
	}

	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %v", arcode.ErrOpenFailed, err)
	}
	defer dst.Close()

	_, err = dst.Write(out)
	return err
}
