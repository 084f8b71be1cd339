// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

/*
Package declare models a command-line application as an immutable tree of
commands, options and positional arguments.

Elements are built with functional settings:

	app, err := declare.NewApplication("git",
		declare.Root(
			declare.Description("distributed version control"),
			declare.WithOption("-v | --verbose"),
			declare.SubCommand("commit",
				declare.WithOption("-m | --message <MESSAGE>",
					declare.OptionArgument("message", declare.ArgumentString)),
				declare.WithArgument("paths", declare.ArgumentFile,
					declare.Optional(), declare.Repeatable()),
			),
		),
	)

Option templates are parsed with the template package. Blank names and
templates fail with errors.ErrCodeInvalidArgument. Setting errors abort
construction and name the enclosing command.

The same tree can be described by a YAML or JSON document:

	kind: Application
	apiVersion: cmdline.nvidia.com/v1alpha1
	spec:
	  name: git
	  options:
	    - template: "-v | --verbose"
	  commands:
	    - name: commit
	      options:
	        - template: "-m | --message <MESSAGE>"

LoadDocument and DecodeDocument read documents; Document.Build turns them into
an Application and Describe converts an Application back.
*/
package declare
