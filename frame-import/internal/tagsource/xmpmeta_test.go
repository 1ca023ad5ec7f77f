// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package tagsource

import "fmt"

const vendorPacket = `<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="Image::ExifTool">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about=""
    xmlns:drone-dji="http://www.dji.com/drone-dji/1.0/"
   drone-dji:AbsoluteAltitude="+184.35"
   drone-dji:RelativeAltitude="+52.70"
   drone-dji:GimbalYawDegree="-12.30">
  </rdf:Description>
 </rdf:RDF>
</x:xmpmeta>`

func Example_scanVendorMeta() {
	// Packet embedded in surrounding binary noise, like a real JPEG
	data := append([]byte{0xff, 0xd8, 0x00, 0x12}, []byte(vendorPacket)...)
	data = append(data, 0x00, 0xff, 0xd9)

	val, ok := scanVendorMeta(data)
	fmt.Printf("%v|%v\n", val, ok)

	// No vendor packet at all
	val, ok = scanVendorMeta([]byte{0xff, 0xd8, 0xff, 0xd9})
	fmt.Printf("%v|%v\n", val, ok)

	// Packet present but no relative altitude attribute
	noAlt := `<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="" xmlns:drone-dji="http://www.dji.com/drone-dji/1.0/"
   drone-dji:AbsoluteAltitude="+184.35"></rdf:Description>
 </rdf:RDF>
</x:xmpmeta>`
	val, ok = scanVendorMeta([]byte(noAlt))
	fmt.Printf("%v|%v\n", val, ok)

	// Same attribute name in a foreign namespace doesn't count
	foreign := `<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="" xmlns:other="http://example.com/ns/"
   other:RelativeAltitude="+99.00"></rdf:Description>
 </rdf:RDF>
</x:xmpmeta>`
	val, ok = scanVendorMeta([]byte(foreign))
	fmt.Printf("%v|%v\n", val, ok)

	// Truncated packet (no closing tag) never matches the region scan
	val, ok = scanVendorMeta([]byte(`<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF>`))
	fmt.Printf("%v|%v\n", val, ok)

	// Output:
	// +52.70|true
	// |false
	// |false
	// |false
	// |false
}
