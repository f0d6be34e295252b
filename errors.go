// Copyright 2025 Poiesic Systems
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

package phonemescape

import "errors"

// ErrNoRepository is returned by persistence calls on a library opened
// without a repository.
var ErrNoRepository = errors.New("no catalog repository attached")

// ErrSourceFromConfig is returned by Open when the caller passes WithCatalog
// or WithRepository, which cfg already decides.
var ErrSourceFromConfig = errors.New("catalog and repository are set by the config")
