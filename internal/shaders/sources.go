package shaders

// ParticleVertex positions each point, applies the expansion displacement
// and computes the perspective-attenuated point size. Points sitting on the
// origin have no direction to expand along; they get a fixed +Y so the
// displacement never divides by zero.
const ParticleVertex = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aColor;
layout(location = 2) in float aSizeOverride;
layout(location = 3) in float aTextureEligible;
layout(location = 4) in float aPhotoFlag;
layout(location = 5) in float aTextureIndex;
layout(location = 6) in float aRandomSize;
layout(location = 7) in float aRandomRotation;

uniform mat4 uProjection;
uniform mat4 uModelView;
uniform float uTime;
uniform float uExpansion;
uniform float uPointSize;
uniform float uSizeMultiplier;
uniform float uDevicePixelRatio;

out vec3 vColor;
out float vRotation;
out float vPhotoFlag;
out float vTextureIndex;
out float vTextureEligible;

void main() {
    vec3 pos = aPosition;
    float len = length(pos);
    vec3 dir = len > 1e-6 ? pos / len : vec3(0.0, 1.0, 0.0);
    pos += dir * uExpansion * 8.0;

    vec4 viewPos = uModelView * vec4(pos, 1.0);
    gl_Position = uProjection * viewPos;

    float size = uPointSize * uSizeMultiplier;
    size *= aSizeOverride > 0.0 ? aSizeOverride : aRandomSize;
    size *= 24.0 / max(length(viewPos.xyz), 1e-3);
    gl_PointSize = max(size * uDevicePixelRatio, 1.0);

    vColor = aColor;
    vRotation = aRandomRotation + uTime * (0.2 + 0.3 * fract(aRandomRotation));
    vPhotoFlag = aPhotoFlag;
    vTextureIndex = aTextureIndex;
    vTextureEligible = aTextureEligible;
}
`

// ParticleFragment draws one of three sprites: the indexed photo texture for
// photo particles, the global sprite texture for texture-eligible points
// when one is bound, or a soft circular disk. Sampler selection is an
// if-chain because dynamically indexing a sampler array is undefined in
// GLSL.
const ParticleFragment = `#version 410 core

in vec3 vColor;
in float vRotation;
in float vPhotoFlag;
in float vTextureIndex;
in float vTextureEligible;

uniform float uOpacity;
uniform int uUseSprite;
uniform sampler2D uPhoto0;
uniform sampler2D uPhoto1;
uniform sampler2D uPhoto2;
uniform sampler2D uPhoto3;
uniform sampler2D uPhoto4;
uniform sampler2D uSprite;

out vec4 fragColor;

vec4 photoTexel(vec2 uv) {
    int idx = int(vTextureIndex + 0.5);
    if (idx == 0) return texture(uPhoto0, uv);
    if (idx == 1) return texture(uPhoto1, uv);
    if (idx == 2) return texture(uPhoto2, uv);
    if (idx == 3) return texture(uPhoto3, uv);
    return texture(uPhoto4, uv);
}

void main() {
    if (vPhotoFlag > 0.5) {
        vec4 texel = photoTexel(gl_PointCoord);
        if (texel.a < 0.1) discard;
        fragColor = vec4(texel.rgb * vColor, texel.a * uOpacity);
        return;
    }

    vec2 local = gl_PointCoord * 2.0 - 1.0;
    float c = cos(vRotation);
    float s = sin(vRotation);
    vec2 rotated = vec2(local.x * c - local.y * s, local.x * s + local.y * c);

    if (uUseSprite == 1 && vTextureEligible > 0.5) {
        vec4 texel = texture(uSprite, rotated * 0.5 + 0.5);
        if (texel.a < 0.1) discard;
        fragColor = vec4(texel.rgb * vColor, texel.a * uOpacity);
        return;
    }

    float d = length(rotated);
    if (d > 1.0) discard;
    float alpha = smoothstep(1.0, 0.6, d);
    fragColor = vec4(vColor, alpha * uOpacity);
}
`
